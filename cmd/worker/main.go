package main

import (
	"context"
	"log"

	"hemotrace/internal/app/bootstrap"

	_ "github.com/joho/godotenv/autoload"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Run the sync/relay/expiry loop until cancelled.
func main() {
	log.Println("hemotrace worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("hemotrace worker stopped with error: %v", err)
	}
}
