// Package config reads the bot's settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bobrandy13/LeetcodeBot/internal/kv"
)

var DefaultRequiredMembers = []string{"razar0200", "bobrandy", "esshaygod"}

var (
	ErrMissingPublicKey = errors.New("DISCORD_PUBLIC_KEY environment variable is not set")
	ErrInvalidPublicKey = errors.New("DISCORD_PUBLIC_KEY must be a hex encoded ed25519 public key")
	ErrNoMembers        = errors.New("REQUIRED_MEMBERS must name at least one user")
)

type Config struct {
	Port string

	DiscordPublicKey     ed25519.PublicKey
	DiscordApplicationID string

	Store kv.Options

	RequiredMembers []string

	// Admin routes are only mounted when ClerkSecretKey is set.
	ClerkSecretKey string
	AdminClerkIDs  []string

	MetricsUser string
	MetricsPass string

	BotName      string
	ContactEmail string

	RateLimitRPS   float64
	RateLimitBurst int

	// GroupRefreshInterval is how often the group is re-evaluated in the
	// background. Zero disables the refresher.
	GroupRefreshInterval time.Duration
}

// Load reads the environment. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "3333"),
		DiscordApplicationID: os.Getenv("DISCORD_APPLICATION_ID"),
		Store: kv.Options{
			Backend:                 getEnv("STORE_BACKEND", kv.BackendMemory),
			RedisAddr:               os.Getenv("REDIS_ADDR"),
			RedisPassword:           os.Getenv("REDIS_PASSWORD"),
			RedisPrefix:             os.Getenv("REDIS_PREFIX"),
			DatabaseURL:             os.Getenv("DATABASE_URL"),
			FirestoreProjectID:      os.Getenv("FIRESTORE_PROJECT_ID"),
			FirestoreCollection:     getEnv("FIRESTORE_COLLECTION", "kv"),
			FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		},
		RequiredMembers: splitList(getEnv("REQUIRED_MEMBERS", strings.Join(DefaultRequiredMembers, ","))),
		ClerkSecretKey:  os.Getenv("CLERK_SECRET_KEY"),
		AdminClerkIDs:   splitList(os.Getenv("ADMIN_CLERK_IDS")),
		MetricsUser:     os.Getenv("METRICS_USER"),
		MetricsPass:     os.Getenv("METRICS_PASS"),
		BotName:         getEnv("BOT_NAME", "LeetCode Streak Bot"),
		ContactEmail:    os.Getenv("CONTACT_EMAIL"),
	}

	var err error
	if cfg.Store.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 30); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}

	if cfg.GroupRefreshInterval, err = getEnvDuration("GROUP_REFRESH_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}

	if len(cfg.RequiredMembers) == 0 {
		return nil, ErrNoMembers
	}

	rawKey := os.Getenv("DISCORD_PUBLIC_KEY")
	if rawKey == "" {
		return nil, ErrMissingPublicKey
	}
	if cfg.DiscordPublicKey, err = ParsePublicKey(rawKey); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParsePublicKey decodes the hex public key shown in the Discord developer portal.
func ParsePublicKey(s string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(b) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKey
	}
	return ed25519.PublicKey(b), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
