package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// composeFile mirrors the subset of a docker-compose file needed to derive
// database connection settings.
type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Ports       []string          `yaml:"ports"`
	Environment map[string]string `yaml:"environment"`
}

// LoadComposeDatabase derives database connection settings from a
// docker-compose deployment descriptor. The port is taken from the host side
// of the first published mapping ("5433:5432" yields 5433) and credentials
// from the service environment (POSTGRES_USER, POSTGRES_PASSWORD,
// POSTGRES_DB). The database is assumed to be reachable on localhost.
func LoadComposeDatabase(path, service string) (*DatabaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compose file: %w", err)
	}

	var compose composeFile
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return nil, fmt.Errorf("parse compose file: %w", err)
	}

	svc, ok := compose.Services[service]
	if !ok {
		return nil, fmt.Errorf("service %q not found in %s", service, path)
	}
	if len(svc.Ports) == 0 {
		return nil, fmt.Errorf("service %q publishes no ports", service)
	}

	port, err := strconv.Atoi(strings.Split(svc.Ports[0], ":")[0])
	if err != nil {
		return nil, fmt.Errorf("parse published port %q: %w", svc.Ports[0], err)
	}

	cfg := &DatabaseConfig{
		Host:           "localhost",
		Port:           port,
		User:           svc.Environment["POSTGRES_USER"],
		Password:       svc.Environment["POSTGRES_PASSWORD"],
		Database:       svc.Environment["POSTGRES_DB"],
		SSLMode:        "disable",
		MaxConnections: 4,
	}
	if cfg.User == "" || cfg.Database == "" {
		return nil, fmt.Errorf("service %q environment is missing POSTGRES_USER or POSTGRES_DB", service)
	}
	return cfg, nil
}
