package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env                          string
	ProjectID                    string
	Port                         string
	AllowedOrigins               []string
	StorageBucket                string
	SignedURLServiceAccountEmail string
	SignedURLTTL                 time.Duration
	RedisAddr                    string
	ExportLockTTL                time.Duration
	HTTPServer                   HTTPServer
}

type HTTPServer struct {
	Timeout         time.Duration `env:"HTTP_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// raw mirrors the environment one to one; Load derives Config from it.
type raw struct {
	Env                          string        `env:"APP_ENV" env-default:"prod"`
	FirebaseProjectID            string        `env:"FIREBASE_PROJECT_ID"`
	GoogleCloudProject           string        `env:"GOOGLE_CLOUD_PROJECT"`
	Port                         string        `env:"PORT" env-default:"8080"`
	AllowedOrigins               string        `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
	StorageBucket                string        `env:"FIREBASE_STORAGE_BUCKET"`
	SignedURLServiceAccountEmail string        `env:"SIGNED_URL_SERVICE_ACCOUNT_EMAIL"`
	SignedURLTTL                 time.Duration `env:"SIGNED_URL_TTL" env-default:"15m"`
	RedisAddr                    string        `env:"REDIS_ADDR"`
	ExportLockTTL                time.Duration `env:"EXPORT_LOCK_TTL" env-default:"2m"`
	HTTPServer                   HTTPServer
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var r raw
	if err := cleanenv.ReadEnv(&r); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	projectID := strings.TrimSpace(r.FirebaseProjectID)
	if projectID == "" {
		projectID = strings.TrimSpace(r.GoogleCloudProject)
	}

	bucket := strings.TrimSpace(r.StorageBucket)
	if bucket == "" && projectID != "" {
		bucket = projectID + ".appspot.com"
	}

	allowed := []string{}
	for _, o := range strings.Split(r.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	env := strings.ToLower(strings.TrimSpace(r.Env))
	switch env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return Config{}, fmt.Errorf("config: APP_ENV must be one of %s, %s, %s; got %q", EnvLocal, EnvDev, EnvProd, r.Env)
	}

	return Config{
		Env:                          env,
		ProjectID:                    projectID,
		Port:                         strings.TrimSpace(r.Port),
		AllowedOrigins:               allowed,
		StorageBucket:                bucket,
		SignedURLServiceAccountEmail: strings.TrimSpace(r.SignedURLServiceAccountEmail),
		SignedURLTTL:                 r.SignedURLTTL,
		RedisAddr:                    strings.TrimSpace(r.RedisAddr),
		ExportLockTTL:                r.ExportLockTTL,
		HTTPServer:                   r.HTTPServer,
	}, nil
}

// Usage describes the environment variables Load understands.
func Usage() string {
	var r raw
	text, err := cleanenv.GetDescription(&r, nil)
	if err != nil {
		return ""
	}
	return text
}
