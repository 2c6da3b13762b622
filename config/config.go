package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	Session struct {
		Path string `yaml:"path"`
	} `yaml:"session"`

	Academy struct {
		MatriculePrefix      string `yaml:"matriculePrefix"`
		CountryCode          string `yaml:"countryCode"`
		ResumeTimeoutSeconds int    `yaml:"resumeTimeoutSeconds"`
		FetchTimeoutSeconds  int    `yaml:"fetchTimeoutSeconds"`
	} `yaml:"academy"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Academy.MatriculePrefix == "" {
		c.Academy.MatriculePrefix = "W26"
	}
	if c.Academy.CountryCode == "" {
		c.Academy.CountryCode = "+229"
	}
	if c.Academy.ResumeTimeoutSeconds == 0 {
		c.Academy.ResumeTimeoutSeconds = 3
	}
	if c.Academy.FetchTimeoutSeconds == 0 {
		c.Academy.FetchTimeoutSeconds = 10
	}
	if c.Session.Path == "" {
		c.Session.Path = "./waniyilo_session"
	}
}

// ResumeTimeout is the hard ceiling on the profile fetch triggered by a
// resumed session. Exceeding it means "no session", not an error.
func (c *Config) ResumeTimeout() time.Duration {
	return time.Duration(c.Academy.ResumeTimeoutSeconds) * time.Second
}

// FetchTimeout bounds content fetches (news, vocabulary, leaderboard).
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Academy.FetchTimeoutSeconds) * time.Second
}
