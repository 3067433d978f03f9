package app

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/utils"
)

type Config struct {
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	HTTPAddr       string
	AllowOrigins   []string
}

// fileConfig is the optional YAML overlay pointed at by CONFIG_FILE.
// Values set there win over environment defaults.
type fileConfig struct {
	HTTPAddr       string   `yaml:"http_addr"`
	AccessTokenTTL int      `yaml:"access_token_ttl"`
	AllowOrigins   []string `yaml:"allow_origins"`
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	corsOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	var origins []string
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	cfg := Config{
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		HTTPAddr:       httpAddr,
		AllowOrigins:   origins,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		overlayConfigFile(&cfg, path, log)
	}
	return cfg
}

func overlayConfigFile(cfg *Config, path string, log *logger.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Failed to read config file, keeping env values", "path", path, "error", err)
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Warn("Failed to parse config file, keeping env values", "path", path, "error", err)
		return
	}
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.AccessTokenTTL > 0 {
		cfg.AccessTokenTTL = time.Duration(fc.AccessTokenTTL) * time.Second
	}
	if len(fc.AllowOrigins) > 0 {
		cfg.AllowOrigins = fc.AllowOrigins
	}
	log.Info("Applied config file overrides", "path", path)
}
