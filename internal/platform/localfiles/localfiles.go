package localfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// Store writes uploaded fridge photos to a local directory. Filenames are
// derived from the slot they describe plus a timestamp, so re-uploading the
// same slot in the same second overwrites the previous file, matching how
// the photos are referenced from layouts.
type Store interface {
	Dir() string
	SaveLayoutPhoto(tempKey, section, originalName string, photo io.Reader) (string, error)
	SaveReferencePhoto(layoutID int64, originalName string, photo io.Reader) (string, error)
}

type store struct {
	dir string
	log *logger.Logger
}

func New(dir string, baseLog *logger.Logger) (Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &store{
		dir: dir,
		log: baseLog.With("platform", "LocalFiles"),
	}, nil
}

func (s *store) Dir() string { return s.dir }

func (s *store) SaveLayoutPhoto(tempKey, section, originalName string, photo io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s_%s%s",
		sanitizePart(tempKey),
		sanitizePart(section),
		time.Now().Format("20060102_150405"),
		Ext(originalName))
	return s.write(name, photo)
}

func (s *store) SaveReferencePhoto(layoutID int64, originalName string, photo io.Reader) (string, error) {
	name := fmt.Sprintf("ref_%d_%s%s",
		layoutID,
		time.Now().Format("20060102_150405"),
		Ext(originalName))
	return s.write(name, photo)
}

func (s *store) write(name string, photo io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, photo); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	s.log.Info("stored upload", "filename", name)
	return name, nil
}

// Ext returns the lowercased extension of a client-supplied filename,
// including the leading dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizePart makes a client-supplied value safe to embed in a filename.
func sanitizePart(v string) string {
	v = unsafeChars.ReplaceAllString(v, "_")
	v = strings.Trim(v, "._")
	if v == "" {
		return "x"
	}
	return v
}
