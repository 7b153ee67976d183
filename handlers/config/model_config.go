package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var mConfig *ModelConfig

func GetModelConfigMap() *ModelConfig {
	return mConfig
}

// GetModelConfig returns the Config for a specific model config ID.
func GetModelConfig(modelConfigId string) (*Config, error) {
	if mConfig == nil {
		return nil, fmt.Errorf("model config map not initialised")
	}
	conf, ok := mConfig.ConfigMap[modelConfigId]
	if !ok || !validateModelConfig(&conf) {
		return nil, fmt.Errorf("model config not found or invalid for id: %s", modelConfigId)
	}
	return &conf, nil
}

func SetModelConfigMap(config *ModelConfig) {
	mConfig = config
}

// LoadModelConfigMap reads the model config registry from a JSON file and
// installs it as the active map.
func LoadModelConfigMap(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var config ModelConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("malformed model config file %s: %w", path, err)
	}
	SetModelConfigMap(&config)
	return nil
}

func validateModelConfig(c *Config) bool {
	if c == nil ||
		c.EmbDim <= 0 ||
		c.VocabSize <= 0 ||
		c.DocNum <= 0 ||
		len(c.InputFields) == 0 ||
		c.Metric != "marco" && c.Metric != "squad" {
		return false
	}
	return true
}
