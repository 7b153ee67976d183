package server

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/qaflow/handlers/qa"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/logger"
	"github.com/gin-gonic/gin"
)

func InitServer(configs *configs.AppConfigs) {
	env := configs.Configs.ApplicationEnv
	if env == "prod" || env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	qa.RegisterRoutes(router)

	address := fmt.Sprintf(":%d", configs.Configs.ApplicationPort)
	logger.Info(fmt.Sprintf("qaflow started on port %s", address))
	if err := router.Run(address); err != nil {
		logger.Panic("Failed to start qaflow application!", err)
	}
}
