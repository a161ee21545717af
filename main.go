package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/cmd"
	"github.com/noiseless47/doodlesphere-backend/internal/rest"
	"github.com/noiseless47/doodlesphere-backend/internal/utils"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	bootstrapLogger, _ := zap.NewDevelopment()

	config, err := cmd.ParseConfig(*configPath, bootstrapLogger)
	if err != nil {
		bootstrapLogger.Fatal("Failed to parse config", zap.Error(err))
	}

	logger, err := utils.NewLogger(config.Apps.LogLevel, config.Apps.LogToFiles)
	if err != nil {
		bootstrapLogger.Fatal("Failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	restApp := rest.NewRest(&rest.Config{
		Port:             config.Apps.Rest.Port,
		AllowedOrigins:   config.Apps.Rest.CORSAllowedOrigins,
		RoomsStorageType: config.Storage.Rooms.Type,
		ChatHistoryLimit: config.Rooms.ChatHistoryLimit,
		Logger:           logger,
	})

	appsManager := cmd.NewAppsManager(logger)

	appsManager.Register(cmd.RestApp, restApp)
	appsManager.RunAll()
	appsManager.WaitForShutdown()
}
