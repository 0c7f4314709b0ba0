package main

import (
	"context"
	"log"

	"github.com/campussphere/campussphere/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("campussphere: %v", err)
	}
}
