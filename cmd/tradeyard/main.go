package main

import (
	"io"
	"log"
	"os"

	"tradeyard/internal/config"
	"tradeyard/internal/http/handlers"
	"tradeyard/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := handlers.NewApp(db, cfg)
	log.Fatal(app.Listen(":" + cfg.Port))
}
