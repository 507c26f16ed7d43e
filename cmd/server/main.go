package main

import (
	"github.com/arclight-labs/casefile/backend/internal/server"
	"github.com/arclight-labs/casefile/backend/internal/util"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Prefix: "server",
	})
	logger.Init(consoleLogger)

	server.Init()
}
