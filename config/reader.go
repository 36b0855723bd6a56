package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
}

type ConfigSchema struct {
	Databases struct {
		Master   DBConfig   `yaml:"master"`
		Replicas []DBConfig `yaml:"replicas"`
	} `yaml:"databases"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Backend struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"backend"`
	Upstream struct {
		// Base URL of the status API that loadtweet fetches from.
		BaseURL string `yaml:"base_url"`
	} `yaml:"upstream"`
	Identity struct {
		// Login page of the external identity provider, /a/login redirects here.
		LoginURL string `yaml:"login_url"`
	} `yaml:"identity"`
	Logs struct {
		Level     string `yaml:"level"`
		SentrySDK string `yaml:"sentry_sdk"`
	} `yaml:"logs"`
}

var AppConfig *ConfigSchema

func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	var conf ConfigSchema
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return err
	}
	if conf.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	AppConfig = &conf
	return nil
}
