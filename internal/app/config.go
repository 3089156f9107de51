package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bondar-aleksandr/netdesk/internal/device"
	"github.com/bondar-aleksandr/netdesk/internal/logger"
)

// type for app-level config
type Config struct {
	Logger logger.Config `yaml:"logger"`
	Device struct {
		Hostname   string   `yaml:"hostname"`
		Interfaces []string `yaml:"interfaces"`
	} `yaml:"device"`
	Terminal struct {
		Banner []string `yaml:"banner"`
	} `yaml:"terminal"`
	Data struct {
		InputFolder  string `yaml:"input_folder"`
		DevicesData  string `yaml:"devices_data"`
		OutputFolder string `yaml:"output_folder"`
		ResultsData  string `yaml:"results_data"`
	} `yaml:"data"`
	Server struct {
		Listen         string   `yaml:"listen"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
}

// DefaultConfig is used for every value the config file leaves out
func DefaultConfig() *Config {
	cfg := &Config{Logger: logger.DefaultConfig()}
	cfg.Device.Hostname = device.DefaultHostname
	cfg.Device.Interfaces = append([]string(nil), device.DefaultInterfaces...)
	cfg.Terminal.Banner = []string{"Welcome to NetDeskOS v0.1", "Type: help"}
	cfg.Data.InputFolder = "./input"
	cfg.Data.DevicesData = "devices.csv"
	cfg.Data.OutputFolder = "./output"
	cfg.Data.ResultsData = "results.txt"
	cfg.Server.Listen = ":8080"
	cfg.Server.AllowedOrigins = []string{"*"}
	return cfg
}

// this func Unmarshals config.yml content on top of the defaults
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read app config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse app config file: %w", err)
	}
	return cfg, nil
}

// DeviceOptions returns the constructor options for a device built from config
func (c *Config) DeviceOptions() []device.Option {
	return []device.Option{
		device.WithHostname(c.Device.Hostname),
		device.WithInterfaces(c.Device.Interfaces...),
	}
}
