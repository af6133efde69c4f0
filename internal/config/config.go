package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr           string `yaml:"addr"`
		Password       string `yaml:"password"`
		DB             int    `yaml:"db"`
		PageTTLSeconds int    `yaml:"page_ttl_seconds"`
	} `yaml:"redis"`
	Auth struct {
		SigningKey       string `yaml:"signing_key"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
	} `yaml:"auth"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if key := os.Getenv("SIGNING_KEY"); key != "" {
		cfg.Auth.SigningKey = key
	}

	// The store client fails late and unhelpfully on an empty DSN, so
	// treat a missing connection string as fatal at startup.
	if cfg.Database.URL == "" {
		log.Fatalf("Database connection string is required (database.url or DATABASE_URL)")
	}
	return cfg
}
