package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Apps struct {
		LogLevel   string `yaml:"log_level"`
		LogToFiles bool   `yaml:"log_to_files"`
		Rest       struct {
			Port               int      `yaml:"port"`
			CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		} `yaml:"rest"`
	} `yaml:"apps"`
	Rooms struct {
		ChatHistoryLimit int `yaml:"chat_history_limit"`
	} `yaml:"rooms"`
	Storage struct {
		Rooms struct {
			Type string `yaml:"type"`
		} `yaml:"rooms"`
	} `yaml:"storage"`
}

func ParseConfig(path string, logger *zap.Logger) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open config file", zap.Error(err))
		return nil, fmt.Errorf("error opening file %w", err)
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		logger.Error("Failed to decode config file", zap.Error(err))
		return nil, fmt.Errorf("error decoding file %w", err)
	}

	return &config, nil
}
