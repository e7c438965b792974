package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	APIPrefix string
	GinMode   string

	DBDriver   string // "sqlite" | "postgres"
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBLogLevel string

	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	MaxPageSize  int
	CORSOrigins  []string
	AWSRegion    string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION") // fallback
	}

	return &Config{
		Port:      getenv("PORT", "8080"),
		APIPrefix: getenv("API_PREFIX", "/api"),
		GinMode:   os.Getenv("GIN_MODE"),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", "sqlite")),
		DBPath:     getenv("DB_PATH", "./data/nutrition.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		MaxPageSize:  getenvInt("MAX_PAGE_SIZE", 100),
		CORSOrigins:  splitList(getenv("CORS_ORIGINS", "*")),
		AWSRegion:    region,
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
