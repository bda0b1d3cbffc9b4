package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSubject is the NATS subject scoring requests arrive on unless
// VADER_SUBJECT says otherwise.
const DefaultSubject = "vader.score"

type Config struct {
	Language    string
	LexiconPath string
	Negations   []string
	LogLevel    string
	Port        int
	NatsURL     string
	NatsToken   string
	Subject     string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if there is one.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Language:    envStr("VADER_LANGUAGE", "en"),
		LexiconPath: envStr("VADER_LEXICON_PATH", ""),
		Negations:   envList("VADER_NEGATIONS"),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		Port:        envInt("VADER_PORT", 8760),
		NatsURL:     envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:   envStr("NATS_TOKEN", ""),
		Subject:     envStr("VADER_SUBJECT", DefaultSubject),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
