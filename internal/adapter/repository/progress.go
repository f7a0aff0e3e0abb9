package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/repository"
	"github.com/samber/lo"
)

type progressRepository struct {
	store *filestore.Store
}

// NewProgressRepository returns a file-store backed ProgressRepository.
func NewProgressRepository(store *filestore.Store) repository.ProgressRepository {
	return &progressRepository{store: store}
}

func (r *progressRepository) load() ([]entity.UserProgress, error) {
	var all []entity.UserProgress
	if err := r.store.Read(collectionProgress, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]entity.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p entity.UserProgress, _ int) bool {
		return p.UserID == userID
	}), nil
}

func (r *progressRepository) Get(ctx context.Context, userID, courseID string) (*entity.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].UserID == userID && all[i].CourseID == courseID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *progressRepository) Save(ctx context.Context, progress *entity.UserProgress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	all, err := r.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].UserID == progress.UserID && all[i].CourseID == progress.CourseID {
			all[i] = *progress
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *progress)
	}
	return r.store.Write(collectionProgress, all)
}
