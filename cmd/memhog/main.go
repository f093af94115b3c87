package main

import (
	"log"
	"os"

	"github.com/google/gops/agent"

	"github.com/0xRadioAc7iv/go-memhog/internal"
	"github.com/0xRadioAc7iv/go-memhog/internal/repl"
	"github.com/0xRadioAc7iv/go-memhog/internal/utils"
)

func main() {
	cfg, err := utils.HandleCLIInputs()
	if err != nil {
		log.Fatal(err)
	}

	logger := internal.NewLogger(os.Stderr, cfg.Debug)

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatal(err)
		}
		defer agent.Close()
		logger.Debug("gops agent started", "pid", os.Getpid())
	}

	driver := repl.New(os.Stdin, os.Stdout,
		repl.WithConfig(cfg),
		repl.WithLogger(logger),
	)

	driver.Run()
}
