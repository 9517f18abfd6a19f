package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	"github.com/mconway/firefly-iii/internal/common/graceful"
	"github.com/mconway/firefly-iii/internal/common/log"
	cMetrics "github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/common/publisher"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/repositories"
	"github.com/mconway/firefly-iii/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config          config.Config
	NewRelic        *newrelic.Application
	WriteDB         *sql.DB
	ReadDB          *sql.DB
	Cache           *redis.Client
	RepoCache       repositories.CacheRepository
	Service         *services.Services
	PublisherClient *PublisherClient
	Metrics         cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := cfg.App.LogLevel
	if logLevel == "" {
		logLevel = "info"
		if config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
			logLevel = "debug"
		}
	}

	log.Init(cfg.App.Name,
		log.WithLevel(logLevel),
		log.WithEnv(cfg.App.Env))

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	producer, err := publisher.NewKafkaSyncProducer(cfg.MessageBroker.KafkaConsumer.Brokers)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	publisherClient := PublisherClient{
		RunRequest: publisher.NewPublisher(producer, cfg.MessageBroker.KafkaConsumer.TopicRuleRun),
		RunEvents:  publisher.NewPublisher(producer, cfg.MessageBroker.KafkaConsumer.TopicRuleEvents),
		RuleRunDLQ: dlqpublisher.New(producer, cfg.MessageBroker.KafkaConsumer.TopicRuleRunDLQ, mtc),
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		publisherClient.RunRequest,
		publisherClient.RunEvents,
		mtc,
	)

	return &Setup{
		Config:          cfg,
		NewRelic:        newRelic,
		WriteDB:         writeDB,
		ReadDB:          readDB,
		Cache:           cache,
		Service:         srv,
		RepoCache:       cacheRepo,
		PublisherClient: &publisherClient,
		Metrics:         mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(log.Logger())
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
