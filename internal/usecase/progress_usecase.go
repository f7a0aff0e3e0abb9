package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/repository"
)

// ProgressInput carries a partial progress update. Nil pointer fields and
// nil slices mean "leave unchanged"; a save never clears a field it was
// not given.
type ProgressInput struct {
	CourseID           string
	CompletedSections  []string
	CurrentSection     *string
	ProgressPercentage *int
}

// ProgressUsecase manages per-course progress records.
type ProgressUsecase interface {
	List(ctx context.Context, userID string) ([]entity.UserProgress, error)
	Save(ctx context.Context, userID string, input ProgressInput) (*entity.UserProgress, error)
}

// NewProgressUsecase wires the repository with default behaviour.
func NewProgressUsecase(repo repository.ProgressRepository) ProgressUsecase {
	return &progressUsecase{repo: repo, clock: time.Now}
}

type progressUsecase struct {
	repo  repository.ProgressRepository
	clock func() time.Time
}

func (u *progressUsecase) List(ctx context.Context, userID string) ([]entity.UserProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *progressUsecase) Save(ctx context.Context, userID string, input ProgressInput) (*entity.UserProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	if strings.TrimSpace(input.CourseID) == "" {
		return nil, entity.ErrInvalidCourseID
	}
	if input.ProgressPercentage != nil && (*input.ProgressPercentage < 0 || *input.ProgressPercentage > 100) {
		return nil, entity.ErrInvalidProgress
	}

	existing, err := u.repo.Get(ctx, userID, input.CourseID)
	if err != nil {
		return nil, err
	}

	record := existing
	if record == nil {
		record = &entity.UserProgress{UserID: userID, CourseID: input.CourseID}
	}
	if input.CompletedSections != nil {
		record.CompletedSections = input.CompletedSections
	}
	if input.CurrentSection != nil {
		record.CurrentSection = *input.CurrentSection
	}
	if input.ProgressPercentage != nil {
		record.ProgressPercentage = *input.ProgressPercentage
	}
	record.Normalize(u.clock())

	if err := u.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
