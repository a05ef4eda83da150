// Package mongostore serves the fact store from MongoDB collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/ougirez/planstat/internal/pkg/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collIndicators   = "indicators"
	collFollowups    = "indicatorfollowups"
	collProvinces    = "provinces"
	collDepartements = "departements"
	collCommunes     = "communes"
)

var geoCollections = map[domain.GeoLevel]string{
	domain.GeoLevelProvince:    collProvinces,
	domain.GeoLevelDepartement: collDepartements,
	domain.GeoLevelCommune:     collCommunes,
}

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and waits for the primary to answer.
func Connect(ctx context.Context, uri, database string, retries uint64) (store.Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	s := &mongoStore{client: client, db: client.Database(database)}
	if err = store.Retry(ctx, retries, func() error { return s.Ping(ctx) }); err != nil {
		s.Close()
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return s, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *mongoStore) Close() {
	if err := s.client.Disconnect(context.Background()); err != nil {
		logger.Errorf(context.Background(), "mongo disconnect: %s", err.Error())
	}
}

func wrapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return constants.ErrDBNotFound
	}
	return err
}

func (s *mongoStore) GetIndicator(ctx context.Context, id string) (*domain.Indicator, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, constants.ErrDBNotFound
	}

	var doc indicatorDoc
	if err = s.db.Collection(collIndicators).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		err = wrapErr(err)
		if err != constants.ErrDBNotFound {
			logger.Errorf(ctx, "GetIndicator, id-%s: %s", id, err.Error())
		}
		return nil, err
	}

	return doc.toDomain(), nil
}

func followupsFilter(indicator primitive.ObjectID, filter store.FollowupsFilter) bson.D {
	f := bson.D{
		{Key: "indicator", Value: indicator},
		{Key: "dataIndex", Value: bson.M{"$in": filter.DataIndexes}},
	}

	if filter.StartYear != nil || filter.EndYear != nil {
		years := bson.D{}
		if filter.StartYear != nil {
			years = append(years, bson.E{Key: "$gte", Value: *filter.StartYear})
		}
		if filter.EndYear != nil {
			years = append(years, bson.E{Key: "$lte", Value: *filter.EndYear})
		}
		f = append(f, bson.E{Key: "year", Value: years})
	}

	return f
}

func (s *mongoStore) ListFollowups(ctx context.Context, filter store.FollowupsFilter) ([]*domain.Followup, error) {
	if len(filter.DataIndexes) == 0 {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(filter.IndicatorID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "dataIndex", Value: 1}})
	cursor, err := s.db.Collection(collFollowups).Find(ctx, followupsFilter(oid, filter), opts)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, fmt.Errorf("find followups: %w", err)
	}

	var docs []followupDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	selected := make([]*domain.Followup, 0, len(docs))
	for i := range docs {
		selected = append(selected, docs[i].toDomain())
	}

	return selected, nil
}

func (s *mongoStore) GetGeoEntity(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error) {
	coll, ok := geoCollections[level]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, constants.ErrDBNotFound
	}

	var doc geoEntityDoc
	if err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("GetGeoEntity, level-%s, id-%s: %w", level, id, wrapErr(err))
	}

	return doc.toDomain(level), nil
}
