package main

import (
	"log"

	"salestrack/internal/auth"
	"salestrack/internal/config"
	"salestrack/internal/handlers"
	"salestrack/internal/store"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	// Money serializes as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	db, err := store.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Database connected and schema synced")

	if cfg.AllowAdminSignup {
		log.Println("WARNING: Admin registration route is OPEN. Disable this in production!")
	}

	h := handlers.New(store.New(db), auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL), cfg)

	log.Println("Server starting on " + cfg.HTTPAddr)
	if err := h.Router().Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
