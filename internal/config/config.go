package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort       int
	SSHPort        int
	SSHHostKeyPath string

	RedisURL string

	OpenSeaAPIKey     string
	CryptoPanicAPIKey string
	TelegramBotToken  string

	NewsFeeds []string

	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() *Config {
	cfg := &Config{
		RedisURL:          os.Getenv("REDIS_URL"),
		OpenSeaAPIKey:     os.Getenv("OPENSEA_API_KEY"),
		CryptoPanicAPIKey: os.Getenv("CRYPTOPANIC_API_KEY"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, caching in process memory")
	}
	if cfg.OpenSeaAPIKey == "" {
		log.Println("Warning: OPENSEA_API_KEY not set, NFT lookups will return empty results")
	}
	if cfg.CryptoPanicAPIKey == "" {
		log.Println("Warning: CRYPTOPANIC_API_KEY not set, curated posts will return empty results")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, briefing will be disabled")
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.SSHPort = 2323
	if v := strings.TrimSpace(os.Getenv("SSH_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/coinlens_ed25519"
	}

	if v := strings.TrimSpace(os.Getenv("NEWS_FEEDS")); v != "" {
		for _, src := range strings.Split(v, ",") {
			if src = strings.TrimSpace(src); src != "" {
				cfg.NewsFeeds = append(cfg.NewsFeeds, src)
			}
		}
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	return cfg
}
