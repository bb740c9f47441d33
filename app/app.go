package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"trackventory/db"
	"trackventory/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Shorthand aliases for handlers.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies handed to controllers.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config

	tokens *session.TokenStore
}

// Config is read from environment variables.
type Config struct {
	RedisAddr  string
	RedisPwd   string
	WebOrigins []string
	TokenTTL   time.Duration
}

func (a *App) Tokens() *session.TokenStore { return a.tokens }

func MustNew() *App {
	cfg := loadConfig()

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigins)

	return &App{
		Router: r, DB: dbConn, RDB: rdb, Config: cfg,
		tokens: session.NewTokenStore(rdb, cfg.TokenTTL),
	}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(get("TOKEN_TTL_SECONDS", "86400") + "s"); err == nil {
		ttl = d
	}

	var origins []string
	for _, o := range strings.Split(get("WEB_ORIGINS", "http://localhost:5173"), ",") {
		if s := strings.TrimSpace(o); s != "" {
			origins = append(origins, s)
		}
	}

	return Config{
		RedisAddr:  get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigins: origins,
		TokenTTL:   ttl,
	}
}
