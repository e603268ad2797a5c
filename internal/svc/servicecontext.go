// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/internal/model"
	"github.com/joeblew999/plat-fonts/internal/recommend"
)

type ServiceContext struct {
	Config      config.Config
	Recommender recommend.Recommender
	Events      model.AnalyticsEventsModel
}

func NewServiceContext(c config.Config, rec recommend.Recommender, events model.AnalyticsEventsModel) *ServiceContext {
	if rec == nil {
		rec = recommend.Unavailable
	}
	return &ServiceContext{
		Config:      c,
		Recommender: rec,
		Events:      events,
	}
}
