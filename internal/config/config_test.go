package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"VADER_LANGUAGE", "VADER_LEXICON_PATH", "VADER_NEGATIONS", "LOG_LEVEL",
		"VADER_PORT", "NATS_URL", "NATS_TOKEN", "VADER_SUBJECT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "en", cfg.Language)
	assert.Empty(t, cfg.LexiconPath)
	assert.Empty(t, cfg.Negations)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8760, cfg.Port)
	assert.Equal(t, "nats://hermes:4222", cfg.NatsURL)
	assert.Empty(t, cfg.NatsToken)
	assert.Equal(t, DefaultSubject, cfg.Subject)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("VADER_LANGUAGE", "xx")
	t.Setenv("VADER_LEXICON_PATH", "/tmp/lexicon.txt")
	t.Setenv("VADER_NEGATIONS", " lacks, , nope ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VADER_PORT", "9999")
	t.Setenv("NATS_URL", "nats://custom:4222")
	t.Setenv("NATS_TOKEN", "s3cr3t-token")
	t.Setenv("VADER_SUBJECT", "sentiment.score")

	cfg := Load()

	assert.Equal(t, "xx", cfg.Language)
	assert.Equal(t, "/tmp/lexicon.txt", cfg.LexiconPath)
	assert.Equal(t, []string{"lacks", "nope"}, cfg.Negations)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "nats://custom:4222", cfg.NatsURL)
	assert.Equal(t, "s3cr3t-token", cfg.NatsToken)
	assert.Equal(t, "sentiment.score", cfg.Subject)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("VADER_PORT", "notanumber")

	cfg := Load()

	assert.Equal(t, 8760, cfg.Port)
}
