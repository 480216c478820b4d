package config

import (
	"fmt"

	aws_handler "tracker/src/utils/aws"

	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Jobs      JobsConfig      `mapstructure:"jobs"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type ServiceType `mapstructure:"type"`
	Port string      `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
	// AWSSecret names a Secrets Manager secret holding the database
	// password. When set it overrides Password.
	AWSSecret string `mapstructure:"aws_secret"`
	AWSRegion string `mapstructure:"aws_region"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type AuthConfig struct {
	Secret       string `mapstructure:"secret"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	TokenTTLMins int    `mapstructure:"token_ttl_mins"`
}

type JobsConfig struct {
	PriceFeedCron string `mapstructure:"price_feed_cron"`
	NetWorthCron  string `mapstructure:"networth_cron"`
}

func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	if env != "" {
		viper.SetConfigName(fmt.Sprintf("appsettings.%s", env))
	} else {
		viper.SetConfigName("appsettings")
	}
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Databases.SQL.AWSSecret != "" {
		if err := loadSQLPasswordFromAWS(&cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func loadSQLPasswordFromAWS(cfg *Config) error {
	handler, err := aws_handler.NewAWSHandler(cfg.Databases.SQL.AWSRegion)
	if err != nil {
		return err
	}
	secret, err := handler.SecretManager.GetSecretValue(cfg.Databases.SQL.AWSSecret)
	if err != nil {
		return fmt.Errorf("could not load sql password from secrets manager: %w", err)
	}
	cfg.Databases.SQL.Password = secret
	return nil
}
