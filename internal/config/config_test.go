package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("OPENSEA_API_KEY", "")
	t.Setenv("CRYPTOPANIC_API_KEY", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("SSH_PORT", "")
	t.Setenv("SSH_HOST_KEY_PATH", "")
	t.Setenv("NEWS_FEEDS", "")

	cfg := Load()
	if cfg.RedisURL != "" {
		t.Fatalf("expected empty redis url, got %s", cfg.RedisURL)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default http port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.SSHPort != 2323 {
		t.Fatalf("expected default ssh port 2323, got %d", cfg.SSHPort)
	}
	if cfg.SSHHostKeyPath != ".ssh/coinlens_ed25519" {
		t.Fatalf("unexpected host key path: %s", cfg.SSHHostKeyPath)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %s", cfg.OpenAIModel)
	}
	if cfg.NewsFeeds != nil {
		t.Fatalf("expected nil feed override, got %v", cfg.NewsFeeds)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("REDIS_URL", "redis:6379")
	t.Setenv("OPENSEA_API_KEY", "os-key")
	t.Setenv("CRYPTOPANIC_API_KEY", "cp-key")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SSH_PORT", "2222")
	t.Setenv("NEWS_FEEDS", " http://a.example/rss , http://b.example/feed ,")

	cfg := Load()
	if cfg.RedisURL != "redis:6379" || cfg.OpenSeaAPIKey != "os-key" || cfg.CryptoPanicAPIKey != "cp-key" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.HTTPPort != 9090 || cfg.SSHPort != 2222 {
		t.Fatalf("unexpected ports: %d/%d", cfg.HTTPPort, cfg.SSHPort)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Fatalf("unexpected model: %s", cfg.OpenAIModel)
	}
	if len(cfg.NewsFeeds) != 2 || cfg.NewsFeeds[0] != "http://a.example/rss" || cfg.NewsFeeds[1] != "http://b.example/feed" {
		t.Fatalf("unexpected feeds: %v", cfg.NewsFeeds)
	}

	t.Setenv("HTTP_PORT", "bad")
	cfg = Load()
	if cfg.HTTPPort != 8080 {
		t.Fatalf("invalid port should fall back to default, got %d", cfg.HTTPPort)
	}
}
