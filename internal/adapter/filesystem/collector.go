package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"algo-readme/internal/domain/model"
	"algo-readme/internal/domain/ports"
)

// Collector walks <root>/<tier>/<category>/Prob<id><ext>.
type Collector struct {
	root    string
	pattern *model.FilePattern
	logger  ports.Logger
}

var _ ports.ProblemCollector = (*Collector)(nil)

// NewCollector creates a Collector over root for files with the given extension.
func NewCollector(root string, pattern *model.FilePattern, logger ports.Logger) *Collector {
	return &Collector{
		root:    root,
		pattern: pattern,
		logger:  logger,
	}
}

// Collect groups problem files by tier and category. Tier directories that do
// not exist are skipped; files whose names do not match are ignored.
func (c *Collector) Collect(ctx context.Context) (*model.Collection, error) {
	collection := model.NewCollection()
	c.logger.Debug(ctx, "scanning source root", "root", c.root)

	for _, tier := range model.Tiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tierPath := filepath.Join(c.root, string(tier))
		categories, err := os.ReadDir(tierPath)
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug(ctx, "tier directory missing", "path", tierPath)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read tier directory %s: %w", tierPath, err)
		}

		for _, category := range categories {
			if !category.IsDir() {
				continue
			}
			if err := c.collectCategory(ctx, collection, tier, filepath.Join(tierPath, category.Name()), category.Name()); err != nil {
				return nil, err
			}
		}
	}

	c.logger.Info(ctx, "collected problem files",
		"total", collection.Counts.Total(),
		"bronze", collection.Counts[model.TierBronze],
		"silver", collection.Counts[model.TierSilver],
		"gold", collection.Counts[model.TierGold],
		"platinum", collection.Counts[model.TierPlatinum],
		"diamond", collection.Counts[model.TierDiamond],
	)
	return collection, nil
}

func (c *Collector) collectCategory(ctx context.Context, collection *model.Collection, tier model.Tier, dir, category string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read category directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := c.pattern.Match(entry.Name())
		if !ok {
			c.logger.Debug(ctx, "skipping non-problem file", "path", filepath.Join(dir, entry.Name()))
			continue
		}
		collection.Add(model.ProblemFile{
			ID:       id,
			Tier:     tier,
			Category: category,
			Path:     filepath.Join(dir, entry.Name()),
		})
	}
	return nil
}
