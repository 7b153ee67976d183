package main

import (
	"fmt"

	handlerConfig "github.com/Meesho/BharatMLStack/qaflow/handlers/config"
	"github.com/Meesho/BharatMLStack/qaflow/internal/server"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/config"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/metrics"
	"github.com/spf13/viper"
)

var AppConfigs configs.AppConfigs

func main() {
	viper.AutomaticEnv()
	viper.SetConfigName("application") // file name without .env
	viper.SetConfigType("env")         // file type
	viper.AddConfigPath(".")           // directory

	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("Error reading config file")
	}
	configs.InitConfig(&AppConfigs)
	logger.InitLogger(&AppConfigs)
	config.InitConfig()
	metrics.InitMetrics(&AppConfigs)
	if path := AppConfigs.Configs.ModelConfigPath; path != "" {
		err = handlerConfig.LoadModelConfigMap(path)
		if err != nil {
			logger.Panic("Error loading model config map", err)
		}
	}
	server.InitServer(&AppConfigs)
}
