package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/labstock-backend/internal/platform/envutil"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// DatabaseService owns the gorm handle. SQLite is the default so a lab can
// run the whole system from a single file; Postgres is opt-in via DB_DRIVER.
type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDatabaseService(logg *logger.Logger) (*DatabaseService, error) {
	serviceLog := logg.With("service", "DatabaseService")

	driver := strings.ToLower(envutil.GetEnv("DB_DRIVER", "sqlite", logg))

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		path := envutil.GetEnv("SQLITE_PATH", "lab_management.db", logg)
		dialector = sqlite.Open(path)
	case "postgres":
		host := envutil.GetEnv("DB_HOST", "localhost", logg)
		port := envutil.GetEnv("DB_PORT", "5432", logg)
		user := envutil.GetEnv("DB_USER", "postgres", logg)
		password := envutil.GetEnv("DB_PASSWORD", "", logg)
		name := envutil.GetEnv("DB_NAME", "labstock", logg)

		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user,
			password,
			host,
			port,
			name,
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	return &DatabaseService{db: gdb, log: serviceLog}, nil
}

func (s *DatabaseService) DB() *gorm.DB { return s.db }

func (s *DatabaseService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
