package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
)

// ProgressRepository abstracts persistence of per-course progress records
// to keep usecases storage agnostic. At most one record exists per
// (userID, courseID); Save replaces the matching record or appends.
type ProgressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.UserProgress, error)
	Get(ctx context.Context, userID, courseID string) (*entity.UserProgress, error)
	Save(ctx context.Context, progress *entity.UserProgress) error
}
