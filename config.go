package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// config
//**********************************************************

var config_validate = validator.New()

// Reads and validates the config file. Relative city paths are resolved
// against the directory of the config file.
func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file " + file)
	config, err := ReadYAMLFromFile[Config](file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	config.SetDefaults()
	if err := config_validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	base := filepath.Dir(file)
	for name, options := range config.Cities {
		options.Source = _ResolvePath(base, options.Source)
		options.GTFS = _ResolvePath(base, options.GTFS)
		options.Friends = _ResolvePath(base, options.Friends)
		config.Cities[name] = options
	}
	return config, nil
}

type Config struct {
	Server struct {
		Port int `yaml:"port" validate:"gte=1,lte=65535"`
	} `yaml:"server"`
	LogLevel       string                    `yaml:"log-level" validate:"oneof=debug info warn error"`
	// run both planner sweeps concurrently
	ParallelSweeps bool                      `yaml:"parallel-sweeps"`
	Cities         Dict[string, CityOptions] `yaml:"cities" validate:"required,min=1,dive"`
}

func (self *Config) SetDefaults() {
	if self.Server.Port == 0 {
		self.Server.Port = 5002
	}
	if self.LogLevel == "" {
		self.LogLevel = "info"
	}
	for name, options := range self.Cities {
		if options.Format == "" {
			options.Format = "city"
		}
		self.Cities[name] = options
	}
}

//**********************************************************
// city options
//**********************************************************

// Source of a city. Format "city" reads a yaml/json city file or a csv
// directory, "osm" parses an osm extract with an optional gtfs feed.
type CityOptions struct {
	Format  string  `yaml:"format" validate:"oneof=city osm"`
	Source  string  `yaml:"source" validate:"required"`
	GTFS    string  `yaml:"gtfs" validate:"excluded_unless=Format osm"`
	Friends string  `yaml:"friends" validate:"required_if=Format osm"`
	MaxSnap float64 `yaml:"max-snap" validate:"gte=0"`
}

func _ResolvePath(base string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
