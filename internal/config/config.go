package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the process reads at startup. It is built once in
// main and passed down explicitly; nothing below main touches the environment.
type Config struct {
	DatabaseDSN string
	HTTPAddr    string

	JWTSecret  []byte
	TokenTTL   time.Duration
	BcryptCost int

	CORSOrigins []string

	// AllowAdminSignup opens the admin registration route. Keep this off
	// outside local development.
	AllowAdminSignup bool
}

// Load reads configuration from environment variables with reasonable
// defaults. It fails hard on values the server cannot run without.
func Load() Config {
	cfg := Config{
		DatabaseDSN:      os.Getenv("DB_DSN"),
		HTTPAddr:         ":8080",
		TokenTTL:         30 * time.Minute,
		BcryptCost:       bcrypt.DefaultCost,
		CORSOrigins:      []string{"http://localhost:5173"},
		AllowAdminSignup: os.Getenv("ALLOW_ADMIN_SIGNUP") == "true",
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal("DB_DSN not set. Please configure your database.")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set. Refusing to sign tokens with an empty key.")
	}
	cfg.JWTSecret = []byte(secret)

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("ACCESS_TOKEN_EXPIRE_MINUTES must be an integer, got %q", v)
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			log.Fatalf("BCRYPT_COST must be between %d and %d, got %q", bcrypt.MinCost, bcrypt.MaxCost, v)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}

	return cfg
}
