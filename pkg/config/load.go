package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among paths (searched upwards, see
// FindEnvTest), then builds App from the process environment. Variables
// already set in the environment win over the file.
func Load(paths ...string) (*App, error) {
	logger := slog.Default()

	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		found, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Env file not found", "path", path)
			continue
		}
		if err := godotenv.Load(found); err != nil {
			logger.Warn("Env file unreadable", "path", found, "error", err)
			continue
		}
		logger.Info("Env file loaded", "path", found)
		break
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("Config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"db_auto_migrate", cfg.DB.AutoMigrate,
		"jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"jwt_expiry", cfg.Auth.Jwt.Expiry,
		"rate_limit", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"event_bus", cfg.EventBus.Driver,
	)
	return &cfg, nil
}

// maskValue keeps the first two and last four characters of a secret.
func maskValue(value string) string {
	if len(value) <= 6 {
		return "****"
	}
	return value[:2] + "****" + value[len(value)-4:]
}
