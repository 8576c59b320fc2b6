package app

import (
	"strings"

	"github.com/yungbote/labstock-backend/internal/platform/envutil"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// Config holds the app-level settings. Database settings are read by the
// db package itself so the two stay independently testable.
type Config struct {
	Port         string
	UploadDir    string
	AllowOrigins []string
	MaxUploadMB  int
	Environment  string
	Version      string
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "5000", log)
	uploadDir := envutil.GetEnv("UPLOAD_DIR", "static/fridge_photos", log)
	rawOrigins := envutil.GetEnv("CORS_ALLOW_ORIGINS", "", log)
	maxUploadMB := envutil.GetEnvAsInt("MAX_UPLOAD_MB", 16, log)
	environment := envutil.GetEnv("APP_ENV", "development", log)
	version := envutil.GetEnv("APP_VERSION", "dev", log)

	var origins []string
	for _, o := range strings.Split(rawOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:         port,
		UploadDir:    uploadDir,
		AllowOrigins: origins,
		MaxUploadMB:  maxUploadMB,
		Environment:  environment,
		Version:      version,
	}
}
