package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"readings-api-server/cmd/api-server/app"
	"readings-api-server/cmd/api-server/app/options"
	_ "readings-api-server/docs"
	log "readings-api-server/internal/logger"
)

func main() {
	option, err := options.NewOptions()
	if err != nil {
		fmt.Print(option.Usage(err))
		os.Exit(1)
	}

	logger, err := log.SetupLogger(*option.LogFile, *option.Mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(option, logger); err != nil {
		logger.Error("api-server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
