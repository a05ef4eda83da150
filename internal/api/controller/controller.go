package controller

import (
	"context"

	"github.com/ougirez/planstat/internal/service/statistics"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	service *statistics.Service
	store   pinger
}

func NewController(service *statistics.Service, store pinger) *Controller {
	return &Controller{service: service, store: store}
}
