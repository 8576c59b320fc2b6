package services

import (
	"context"
	"fmt"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type SettingService interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (*string, error)
	SetAll(ctx context.Context, values map[string]any) error
}

type settingService struct {
	log  *logger.Logger
	repo repos.SettingRepo
}

func NewSettingService(baseLog *logger.Logger, repo repos.SettingRepo) SettingService {
	return &settingService{
		log:  baseLog.With("service", "SettingService"),
		repo: repo,
	}
}

func (s *settingService) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.GetAll(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Get returns nil without an error when the key has never been set.
func (s *settingService) Get(ctx context.Context, key string) (*string, error) {
	row, err := s.repo.GetByKey(dbctx.Context{Ctx: ctx}, key)
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return &row.Value, nil
}

// SetAll upserts every pair in the request body. Values arrive as arbitrary
// JSON and are stored as text.
func (s *settingService) SetAll(ctx context.Context, values map[string]any) error {
	for key, value := range values {
		if err := s.repo.Upsert(dbctx.Context{Ctx: ctx}, key, settingText(value)); err != nil {
			s.log.Error("save setting failed", "key", key, "error", err)
			return fmt.Errorf("save setting %q: %w", key, err)
		}
	}
	s.log.Info("settings saved", "count", len(values))
	return nil
}

func settingText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
