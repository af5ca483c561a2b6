package main

import (
	"context"
	"log"

	"github.com/landsetu/landsetu/internal/app"
	"github.com/landsetu/landsetu/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
