package db

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

const fridgeDefaultsEnv = "FRIDGE_DEFAULTS_PATH"

//go:embed fridge_defaults.yaml
var fridgeDefaultsFS embed.FS

// fallback grids used when the YAML is missing or invalid
var fallbackFridgeConfigs = []types.FridgeConfig{
	{TempKey: types.TempFridge, BodyRows: 3, BodyColumns: 3, DoorRows: 2, DoorColumns: 2},
	{TempKey: types.TempFreezer, BodyRows: 3, BodyColumns: 3, DoorRows: 2, DoorColumns: 2},
	{TempKey: types.TempUltraFreeze, BodyRows: 3, BodyColumns: 3, DoorRows: 0, DoorColumns: 0},
}

type yamlFridgeDefaults struct {
	Configs []yamlFridgeConfig `yaml:"configs"`
}

type yamlFridgeConfig struct {
	TempKey     string `yaml:"temp_key"`
	BodyRows    int    `yaml:"body_rows"`
	BodyColumns int    `yaml:"body_columns"`
	DoorRows    int    `yaml:"door_rows"`
	DoorColumns int    `yaml:"door_columns"`
}

// SeedFridgeConfigs inserts the default grid for every known temperature.
// Rows that already exist are left untouched so user edits survive restarts.
func SeedFridgeConfigs(db *gorm.DB, log *logger.Logger) error {
	configs, err := loadFridgeDefaults()
	if err != nil {
		if log != nil {
			log.Warn("fridge defaults load failed; using fallback", "error", err)
		}
		configs = fallbackFridgeConfigs
	}

	for i := range configs {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&configs[i]).Error; err != nil {
			return fmt.Errorf("seed fridge config %s: %w", configs[i].TempKey, err)
		}
	}
	return nil
}

func (s *DatabaseService) SeedFridgeConfigs() error {
	return SeedFridgeConfigs(s.db, s.log)
}

func loadFridgeDefaults() ([]types.FridgeConfig, error) {
	data, err := readFridgeDefaults()
	if err != nil {
		return nil, err
	}

	var doc yamlFridgeDefaults
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Configs) == 0 {
		return nil, errors.New("no fridge configs defined")
	}

	out := make([]types.FridgeConfig, 0, len(doc.Configs))
	seen := map[string]bool{}
	for _, c := range doc.Configs {
		key := strings.TrimSpace(c.TempKey)
		if key == "" {
			return nil, errors.New("temp_key is required")
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate temp_key: %s", key)
		}
		if c.BodyRows <= 0 || c.BodyColumns <= 0 {
			return nil, fmt.Errorf("temp_key %s: body grid must be positive", key)
		}
		if c.DoorRows < 0 || c.DoorColumns < 0 {
			return nil, fmt.Errorf("temp_key %s: door grid cannot be negative", key)
		}
		seen[key] = true
		out = append(out, types.FridgeConfig{
			TempKey:     key,
			BodyRows:    c.BodyRows,
			BodyColumns: c.BodyColumns,
			DoorRows:    c.DoorRows,
			DoorColumns: c.DoorColumns,
		})
	}
	return out, nil
}

func readFridgeDefaults() ([]byte, error) {
	if path := strings.TrimSpace(os.Getenv(fridgeDefaultsEnv)); path != "" {
		return os.ReadFile(path)
	}
	return fridgeDefaultsFS.ReadFile("fridge_defaults.yaml")
}
