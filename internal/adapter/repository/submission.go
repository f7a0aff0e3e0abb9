package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/repository"
	"github.com/samber/lo"
)

type submissionRepository struct {
	store *filestore.Store
}

// NewSubmissionRepository returns a file-store backed SubmissionRepository.
func NewSubmissionRepository(store *filestore.Store) repository.SubmissionRepository {
	return &submissionRepository{store: store}
}

func (r *submissionRepository) load() ([]entity.Submission, error) {
	var all []entity.Submission
	if err := r.store.Read(collectionSubmissions, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *submissionRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(s entity.Submission, _ int) bool {
		return s.AssignmentID == assignmentID
	}), nil
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(s entity.Submission, _ int) bool {
		return s.UserID == userID
	}), nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, entity.ErrSubmissionNotFound
}

func (r *submissionRepository) FindLatest(ctx context.Context, userID, assignmentID string) (*entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	var latest *entity.Submission
	for i := range all {
		s := &all[i]
		if s.UserID != userID || s.AssignmentID != assignmentID {
			continue
		}
		if latest == nil || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	all, err := r.load()
	if err != nil {
		return err
	}
	all = append(all, *submission)
	return r.store.Write(collectionSubmissions, all)
}

func (r *submissionRepository) Update(ctx context.Context, submission *entity.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	all, err := r.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == submission.ID {
			all[i] = *submission
			return r.store.Write(collectionSubmissions, all)
		}
	}
	return entity.ErrSubmissionNotFound
}
