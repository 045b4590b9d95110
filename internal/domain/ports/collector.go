package ports

import (
	"context"

	"algo-readme/internal/domain/model"
)

// ProblemCollector discovers solved problem files.
type ProblemCollector interface {
	Collect(ctx context.Context) (*model.Collection, error)
}
