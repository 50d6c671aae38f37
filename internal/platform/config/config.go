package config

import (
	"os"
	"strconv"
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr         string
	DatabaseURL  string
	QRCodeDir    string
	TemplatePath string
	FontPath     string
	PageSize     int
}

// FromEnv builds a Config from environment variables so main stays lean.
// An empty DATABASE_URL selects the in-memory store, which is only suitable
// for development and tests.
func FromEnv() Config {
	return Config{
		Addr:         getenv("PROPERTY_TAG_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		QRCodeDir:    getenv("QR_CODE_DIR", "assets/qr_codes"),
		TemplatePath: getenv("TEMPLATE_PATH", "assets/cerebro_property_id.png"),
		FontPath:     os.Getenv("CAPTION_FONT_PATH"),
		PageSize:     intenv("PAGE_SIZE", 10),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intenv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
