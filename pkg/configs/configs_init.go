package configs

import (
	"log"

	"github.com/spf13/viper"
)

func InitConfig(appConfigs *AppConfigs) {
	staticConfig := appConfigs.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	// Manually bind environment variables to mapstructure keys
	// This ensures proper mapping from env vars to struct fields
	bindEnvVars()

	// Bind environment variables to config keys
	// This maps environment variables to struct fields using mapstructure tags
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	log.Println("Configuration loaded from environment variables")
}

func bindEnvVars() {
	// Application config
	viper.BindEnv("app_env", "APP_ENV")
	viper.BindEnv("app_log_level", "APP_LOG_LEVEL")
	viper.BindEnv("app_name", "APP_NAME")
	viper.BindEnv("app_port", "APP_PORT")

	// Metrics / Telegraf config
	viper.BindEnv("metrics_sampling_rate", "METRIC_SAMPLING_RATE")
	viper.BindEnv("telegraf_host", "TELEGRAF_HOST")
	viper.BindEnv("telegraf_port", "TELEGRAF_PORT")

	// Evaluation config
	viper.BindEnv("evaluation_inferFileDir", "EVALUATION_INFER_FILE_DIR")
	viper.BindEnv("evaluation_modelConfigPath", "EVALUATION_MODEL_CONFIG_PATH")
	viper.BindEnv("evaluation_fromFile", "EVALUATION_FROM_FILE")
}
