package constants

const (
	ViperHTTPAddrKey              = "http.addr"
	ViperHTTPCorsOriginsKey       = "http.cors_origins"
	ViperLogLevelKey              = "log.level"
	ViperLogDevelopmentKey        = "log.development"
	ViperStoreDriverKey           = "store.driver"
	ViperPostgresDSNKey           = "store.postgres.dsn"
	ViperMongoURIKey              = "store.mongo.uri"
	ViperMongoDatabaseKey         = "store.mongo.database"
	ViperStoreConnectRetriesKey   = "store.connect_retries"
	ViperComparisonParallelismKey = "statistics.comparison_parallelism"
	ViperNationalLabelKey         = "statistics.national_label"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxKeyRequestID = "request_id"
)
