package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nodex-club.backend/internal/config"
	plog "nodex-club.backend/pkg/logger"
	"nodex-club.backend/pkg/redis"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origNewAuthCache := newAuthCache
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		newAuthCache = origNewAuthCache
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18090",
			Env:  "development",
		},
		Store: config.StoreConfig{
			URL:        "http://localhost:18091",
			AdminToken: "",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			PASSWORD: "",
		},
		JWT: config.JWTConfig{
			Secret: "secret",
			Expiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			AuthCacheEncryptionKey: "0000000000000000000000000000000000000000000000000000000000000000",
			AuthCacheTTL:           30 * time.Second,
		},
	}
}

func TestRunMainProcess_AuthCacheError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newAuthCache = func(string, time.Duration) (*redis.AuthCache, error) {
		return nil, errors.New("bad cache key")
	}

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected auth cache error")
	}
}

func TestRunMainProcess_RedisDownStillStarts(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newAuthCache = redis.NewAuthCache
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newAuthCache = redis.NewAuthCache
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
