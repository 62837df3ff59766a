package main

import (
	"log"

	"paymee-bridge/config"
	"paymee-bridge/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
