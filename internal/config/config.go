package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     string

	AuthToken string
	JWTSecret string

	DBType       string
	DBDSN        string
	FileProfiles string
	FileVitals   string
	FileAppts    string

	RosterFile string
	BedsFile   string

	ModelMode string // local or remote
	ModelFile string
	ModelURL  string

	SearchAPIKey   string
	SearchEngineID string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
			Port:     getEnv("PORT", "8090"),

			AuthToken: getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			JWTSecret: getEnv("JWT_SECRET", ""),

			DBType:       getEnv("STORAGE_BACKEND", "file"),
			DBDSN:        getEnv("POSTGRES_DSN", ""),
			FileProfiles: getEnv("PROFILES_FILE", "data/profiles.json"),
			FileVitals:   getEnv("VITALS_FILE", "data/vitals.json"),
			FileAppts:    getEnv("APPOINTMENTS_FILE", "data/appointments.json"),

			RosterFile: getEnv("ROSTER_FILE", "data/doctors.json"),
			BedsFile:   getEnv("BEDS_FILE", "data/beds.json"),

			ModelMode: getEnv("MODEL_MODE", "local"),
			ModelFile: getEnv("MODEL_FILE", "data/model.json"),
			ModelURL:  getEnv("MODEL_URL", ""),

			SearchAPIKey:   getEnv("GOOGLE_API_KEY", ""),
			SearchEngineID: getEnv("SEARCH_ENGINE_ID", ""),

			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPFrom:     getEnv("EMAIL_ADDRESS", ""),
			SMTPPassword: getEnv("EMAIL_PASSWORD", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.FileProfiles == "" || c.FileVitals == "" || c.FileAppts == "") {
		return errors.New("File storage requires PROFILES_FILE, VITALS_FILE and APPOINTMENTS_FILE to be set")
	}
	if c.ModelMode == "remote" && c.ModelURL == "" {
		return errors.New("MODEL_URL is required when MODEL_MODE=remote")
	}
	if c.ModelMode == "local" && c.ModelFile == "" {
		return errors.New("MODEL_FILE is required when MODEL_MODE=local")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required outside development")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
