package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"algo-readme/internal/domain/model"
	"algo-readme/internal/domain/ports"
)

// Source tells where an EnrichResult came from.
type Source int

const (
	// SourceService means the metadata came from the problem service.
	SourceService Source = iota
	// SourceFallback means the lookup failed and a placeholder was built.
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "service"
}

// EnrichResult is the outcome of looking up one problem file. Info is always
// usable; Reason is set when Source is SourceFallback.
type EnrichResult struct {
	Info   model.ProblemInfo
	Source Source
	Reason error
}

// Enricher turns problem files into display records.
type Enricher struct {
	problems ports.ProblemProvider
	pattern  *model.FilePattern
	linkBase string
	logger   ports.Logger
}

// NewEnricher constructs an Enricher. linkBase is the problem page prefix,
// e.g. https://www.acmicpc.net/problem.
func NewEnricher(problems ports.ProblemProvider, pattern *model.FilePattern, linkBase string, logger ports.Logger) *Enricher {
	return &Enricher{
		problems: problems,
		pattern:  pattern,
		linkBase: strings.TrimRight(linkBase, "/"),
		logger:   logger,
	}
}

// Enrich looks up the problem behind path. ok is false when the file name is
// not a problem file; lookup failures never surface as errors.
func (e *Enricher) Enrich(ctx context.Context, path, category string) (EnrichResult, bool) {
	id, ok := e.pattern.Match(filepath.Base(path))
	if !ok {
		e.logger.Debug(ctx, "file name does not match problem pattern", "path", path)
		return EnrichResult{}, false
	}

	info := model.ProblemInfo{
		ID:       id,
		Link:     e.Link(id),
		Category: category,
	}

	meta, err := e.lookup(ctx, id)
	if err != nil {
		e.logger.Warn(ctx, "problem lookup failed, using fallback", "problem_id", id, "error", err)
		info.Title = FallbackTitle(id)
		info.Tags = []string{}
		return EnrichResult{Info: info, Source: SourceFallback, Reason: err}, true
	}

	info.Title = meta.Title
	info.Level = meta.Level
	info.Tags = meta.Tags
	if info.Tags == nil {
		info.Tags = []string{}
	}
	return EnrichResult{Info: info, Source: SourceService}, true
}

func (e *Enricher) lookup(ctx context.Context, id int) (meta *model.Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			meta, err = nil, fmt.Errorf("problem provider panicked: %v", r)
		}
	}()

	meta, err = e.problems.GetProblem(ctx, id)
	if err == nil && meta == nil {
		err = fmt.Errorf("problem provider returned no metadata")
	}
	return meta, err
}

// Link is the problem page URL for id.
func (e *Enricher) Link(id int) string {
	return fmt.Sprintf("%s/%d", e.linkBase, id)
}

// FallbackTitle names a problem whose metadata could not be fetched.
func FallbackTitle(id int) string {
	return fmt.Sprintf("Problem %d", id)
}
