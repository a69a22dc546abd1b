package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/Astemirdum/lab-booking/pkg/logger"
	"github.com/Astemirdum/lab-booking/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Booking holds the scheduling settings of a deployment.
type Booking struct {
	// TimeZone is the IANA zone of the institution, slot hours are local to it.
	TimeZone      string        `envconfig:"BOOKING_TIME_ZONE" default:"America/Sao_Paulo"`
	MaxSeriesDays int           `envconfig:"BOOKING_MAX_SERIES_DAYS" default:"180"`
	CacheSize     int           `envconfig:"BOOKING_CACHE_SIZE" default:"256"`
	CacheTTL      time.Duration `envconfig:"BOOKING_CACHE_TTL" default:"30s"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Booking  Booking
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options fill fields that have no
// default, a set variable still wins.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
