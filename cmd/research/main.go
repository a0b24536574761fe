package main

import (
	"os"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
