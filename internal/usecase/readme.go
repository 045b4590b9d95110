package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"algo-readme/internal/domain/model"
	"algo-readme/internal/domain/ports"
	"algo-readme/internal/report"
)

// RunSummary describes one completed regeneration.
type RunSummary struct {
	Total     int
	Counts    model.TierCounts
	Fallbacks int
	Duration  time.Duration
}

// ReadmeUpdate orchestrates collecting, enriching, rendering and publishing the README.
type ReadmeUpdate struct {
	collector ports.ProblemCollector
	enricher  *Enricher
	publisher ports.Publisher
	logger    ports.Logger
}

// NewReadmeUpdate constructs a ReadmeUpdate use case.
func NewReadmeUpdate(
	collector ports.ProblemCollector,
	enricher *Enricher,
	publisher ports.Publisher,
	logger ports.Logger,
) *ReadmeUpdate {
	return &ReadmeUpdate{
		collector: collector,
		enricher:  enricher,
		publisher: publisher,
		logger:    logger,
	}
}

// Run executes one regeneration. Nothing is published unless every step succeeds.
func (u *ReadmeUpdate) Run(ctx context.Context) (*RunSummary, error) {
	start := time.Now()
	u.logger.Info(ctx, "starting readme update")

	collection, err := u.collector.Collect(ctx)
	if err != nil {
		u.logger.Error(ctx, "failed to collect problem files", "error", err)
		return nil, fmt.Errorf("collect problems: %w", err)
	}

	tables := make(map[model.Tier]string, len(model.Tiers))
	fallbacks := 0
	for _, tier := range model.Tiers {
		problems, failed, err := u.enrichTier(ctx, collection.Problems[tier])
		if err != nil {
			u.logger.Error(ctx, "failed to enrich problems", "tier", tier, "error", err)
			return nil, fmt.Errorf("enrich %s: %w", tier, err)
		}
		fallbacks += failed
		tables[tier] = report.Table(problems)
	}

	content, err := report.Document(collection.Counts, tables)
	if err != nil {
		u.logger.Error(ctx, "failed to render readme", "error", err)
		return nil, fmt.Errorf("render readme: %w", err)
	}

	if err := u.publisher.Publish(ctx, content); err != nil {
		u.logger.Error(ctx, "failed to publish readme", "error", err)
		return nil, fmt.Errorf("publish readme: %w", err)
	}

	summary := &RunSummary{
		Total:     collection.Counts.Total(),
		Counts:    collection.Counts,
		Fallbacks: fallbacks,
		Duration:  time.Since(start),
	}
	u.logger.Info(ctx, "readme update completed",
		"total", summary.Total, "fallbacks", summary.Fallbacks, "duration", summary.Duration)
	return summary, nil
}

// enrichTier looks up every file of one tier, flattening its categories.
// Categories are visited in name order so log output is stable between runs.
func (u *ReadmeUpdate) enrichTier(ctx context.Context, categories map[string][]model.ProblemFile) ([]model.ProblemInfo, int, error) {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		problems []model.ProblemInfo
		failed   int
	)
	for _, name := range names {
		for _, file := range categories[name] {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
			result, ok := u.enricher.Enrich(ctx, file.Path, name)
			if !ok {
				continue
			}
			u.logger.Debug(ctx, "enriched problem",
				"problem_id", result.Info.ID, "category", name, "source", result.Source.String())
			if result.Source == SourceFallback {
				failed++
			}
			problems = append(problems, result.Info)
		}
	}
	return problems, failed, nil
}
