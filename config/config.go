package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Origins allowed to call the API from a browser. ALLOWED_ORIGINS
// overrides this list at startup.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://bilty-ledger.netlify.app",
}

type Config struct {
	PostgresURL    string
	MongoURL       string
	DBType         string
	Port           string
	CompanyName    string
	AllowedOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		DBType:         os.Getenv("DB_TYPE"),
		Port:           os.Getenv("PORT"),
		CompanyName:    os.Getenv("COMPANY_NAME"),
		AllowedOrigins: defaultAllowedOrigins,
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if cfg.Port == "" {
		cfg.Port = "10000"
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Bilty Ledger"
	}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	return cfg
}
