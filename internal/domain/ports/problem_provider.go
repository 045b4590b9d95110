package ports

import (
	"context"

	"algo-readme/internal/domain/model"
)

// ProblemProvider looks up problem metadata by numeric id (e.g. solved.ac).
type ProblemProvider interface {
	GetProblem(ctx context.Context, id int) (*model.Metadata, error)
}
