package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPath = "dd-manager.yaml"

// Config is built once at startup and passed to every component.
type Config struct {
	Domain     string `yaml:"domain"`
	Token      string `yaml:"token"`
	TasksFile  string `yaml:"tasks_file"`
	WindowDays int    `yaml:"window_days"`
}

func Default() *Config {
	return &Config{
		Domain:     "dd.codescoring.tech",
		TasksFile:  "tasks.json",
		WindowDays: 7,
	}
}

// Load reads a YAML config from path. An empty path means the default
// location, which is allowed to be absent; an explicit path is not.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("token is required: pass --token, set DD_TOKEN or add it to the config file")
	}
	if c.Domain == "" {
		return errors.New("domain must not be empty")
	}
	if c.WindowDays <= 0 {
		return errors.New("window_days must be positive")
	}
	return nil
}

// BaseURL is the root of both the REST API and the web UI.
func (c *Config) BaseURL() string {
	return "https://" + c.Domain
}
