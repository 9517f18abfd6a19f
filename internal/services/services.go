package services

import (
	"github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/common/publisher"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	runRequestPub publisher.Publisher
	runEventPub   publisher.Publisher

	metrics metrics.Metrics

	common service

	RuleGroup   *ruleGroup
	Rule        *rule
	RuleBatch   *ruleBatch
	Transaction *transaction
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	runRequestPub publisher.Publisher,
	runEventPub publisher.Publisher,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cacheRepo:     cacheRepo,
		runRequestPub: runRequestPub,
		runEventPub:   runEventPub,
		metrics:       metrics,
	}
	srv.common.srv = srv
	srv.RuleGroup = (*ruleGroup)(&srv.common)
	srv.Rule = (*rule)(&srv.common)
	srv.RuleBatch = (*ruleBatch)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)

	return srv
}
