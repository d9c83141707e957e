package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/DocFacilBR/doc-scheduler/internal/timezone"
)

type Config struct {
	DataDir     string
	HoursFile   string
	CountryCode string
	Timezone    string
}

func Load() *Config {
	// .env é opcional; variáveis já exportadas têm precedência
	_ = godotenv.Load()

	return &Config{
		DataDir:     getEnv("DOCFACIL_DATA_DIR", ""),
		HoursFile:   getEnv("DOCFACIL_HOURS_FILE", ""),
		CountryCode: getEnv("DOCFACIL_COUNTRY_CODE", "55"),
		Timezone:    getEnv("DOCFACIL_TIMEZONE", timezone.DefaultTimezone),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
