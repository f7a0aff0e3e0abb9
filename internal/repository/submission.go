package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
)

// SubmissionRepository persists assignment submissions.
type SubmissionRepository interface {
	ListByAssignment(ctx context.Context, assignmentID string) ([]entity.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Submission, error)
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	// FindLatest returns the most recently updated submission for the
	// (userID, assignmentID) pair, or nil when the user has never
	// submitted. Drives create-vs-update on submit.
	FindLatest(ctx context.Context, userID, assignmentID string) (*entity.Submission, error)
	Create(ctx context.Context, submission *entity.Submission) error
	Update(ctx context.Context, submission *entity.Submission) error
}
