package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"algo-readme/internal/domain/ports"
)

// FilePublisher writes the README to a fixed path.
type FilePublisher struct {
	path   string
	logger ports.Logger
}

var _ ports.Publisher = (*FilePublisher)(nil)

// NewFilePublisher creates a publisher writing to path.
func NewFilePublisher(path string, logger ports.Logger) *FilePublisher {
	return &FilePublisher{path: path, logger: logger}
}

// Publish replaces the file content atomically: a temp file in the same
// directory is written and renamed over the target, so a failed write leaves
// the previous README intact.
func (p *FilePublisher) Publish(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		return fmt.Errorf("replace %s: %w", p.path, err)
	}

	p.logger.Info(ctx, "readme written", "path", p.path, "bytes", len(content))
	return nil
}
