package config

import (
	"time"
)

type (
	Config struct {
		App      App      `json:"app" mapstructure:"app"`
		Postgres Postgres `json:"postgres" mapstructure:"postgres"`
		Redis    Redis    `json:"redis" mapstructure:"redis"`

		NewRelicLicenseKey string `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		RuleEngine         RuleEngineConfig         `json:"rule_engine" mapstructure:"rule_engine"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		MaxOpenConnection int    `json:"max_open_connections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	MessageBroker struct {
		HTTPPort      int            `json:"http_port" mapstructure:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer" mapstructure:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers              []string `json:"brokers" mapstructure:"brokers"`
		ConsumerGroupRuleRun string   `json:"consumer_group_rule_run" mapstructure:"consumer_group_rule_run"`
		TopicRuleRun         string   `json:"topic_rule_run" mapstructure:"topic_rule_run"`
		TopicRuleRunDLQ      string   `json:"topic_rule_run_dlq" mapstructure:"topic_rule_run_dlq"`
		TopicRuleEvents      string   `json:"topic_rule_events" mapstructure:"topic_rule_events"`
		Assignor             string   `json:"assignor" mapstructure:"assignor"`
		IsOldest             bool     `json:"is_oldest" mapstructure:"is_oldest"`
		IsVerbose            bool     `json:"is_verbose" mapstructure:"is_verbose"`
	}

	// RuleEngineConfig tunes reporting around rule evaluation; it does not
	// change matching semantics.
	RuleEngineConfig struct {
		// PublishRunEvents toggles the Kafka summary event emitted after a
		// batch run finishes.
		PublishRunEvents bool `json:"publish_run_events" mapstructure:"publish_run_events"`

		// RunStatusTTL bounds how long the per-group "last run" status is
		// kept in Redis.
		RunStatusTTL time.Duration `json:"run_status_ttl" mapstructure:"run_status_ttl"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)
