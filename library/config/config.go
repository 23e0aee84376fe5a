package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-lending/pkg/kafka"
	"github.com/Astemirdum/library-lending/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Lending struct {
	EventsTopic   string `envconfig:"LENDING_EVENTS_TOPIC" default:"library.loans"`
	CommandsTopic string `envconfig:"LENDING_COMMANDS_TOPIC" default:"library.commands"`
	ConsumerGroup string `envconfig:"LENDING_CONSUMER_GROUP" default:"library-lending"`

	BreakerRecordLength     int           `envconfig:"LENDING_BREAKER_RECORD_LENGTH" default:"100"`
	BreakerTimeout          time.Duration `envconfig:"LENDING_BREAKER_TIMEOUT" default:"1s"`
	BreakerPercentile       float64       `envconfig:"LENDING_BREAKER_PERCENTILE" default:"0.2"`
	BreakerRecoveryRequests int           `envconfig:"LENDING_BREAKER_RECOVERY_REQUESTS" default:"2"`
}

type Config struct {
	Server  HTTPServer   `yaml:"server"`
	Kafka   kafka.Config `yaml:"kafka"`
	Lending Lending      `yaml:"lending"`
	Log     logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values that the
// environment may override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
	})

	return cfg
}

func load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}
