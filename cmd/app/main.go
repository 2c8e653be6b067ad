package main

import (
	"cinetix/config"
	"cinetix/di"
	"cinetix/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
