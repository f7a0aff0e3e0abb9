package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/eslsoft/atelier/internal/entity"
)

type fakeProgressRepo struct {
	mu    sync.RWMutex
	items []entity.UserProgress
}

func (r *fakeProgressRepo) ListByUser(ctx context.Context, userID string) ([]entity.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.UserProgress
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) Get(ctx context.Context, userID, courseID string) (*entity.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].UserID == userID && r.items[i].CourseID == courseID {
			copy := r.items[i]
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeProgressRepo) Save(ctx context.Context, progress *entity.UserProgress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].UserID == progress.UserID && r.items[i].CourseID == progress.CourseID {
			r.items[i] = *progress
			return nil
		}
	}
	r.items = append(r.items, *progress)
	return nil
}

type fakeFavoriteRepo struct {
	mu    sync.RWMutex
	items []entity.UserFavorite
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]entity.UserFavorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.UserFavorite
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, favorite entity.UserFavorite) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.Matches(favorite.UserID, favorite.ItemID, favorite.ItemType) {
			return false, nil
		}
	}
	r.items = append(r.items, favorite)
	return true, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, itemID string, itemType entity.ItemType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.items {
		if f.Matches(userID, itemID, itemType) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return entity.ErrFavoriteNotFound
}

type fakeHistoryRepo struct {
	mu    sync.RWMutex
	items []entity.UserHistoryItem
	// fail makes the next Append return an error, for compound-write tests.
	fail error
}

func (r *fakeHistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]entity.UserHistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.UserHistoryItem
	for _, h := range r.items {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeHistoryRepo) Append(ctx context.Context, item entity.UserHistoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		err := r.fail
		r.fail = nil
		return err
	}
	r.items = append(r.items, item)
	return nil
}

type fakeSubmissionRepo struct {
	mu    sync.RWMutex
	items []entity.Submission
}

func (r *fakeSubmissionRepo) ListByAssignment(ctx context.Context, assignmentID string) ([]entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Submission
	for _, s := range r.items {
		if s.AssignmentID == assignmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ListByUser(ctx context.Context, userID string) ([]entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Submission
	for _, s := range r.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			copy := r.items[i]
			return &copy, nil
		}
	}
	return nil, entity.ErrSubmissionNotFound
}

func (r *fakeSubmissionRepo) FindLatest(ctx context.Context, userID, assignmentID string) (*entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *entity.Submission
	for i := range r.items {
		s := r.items[i]
		if s.UserID != userID || s.AssignmentID != assignmentID {
			continue
		}
		if latest == nil || s.UpdatedAt.After(latest.UpdatedAt) {
			copy := s
			latest = &copy
		}
	}
	return latest, nil
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *entity.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *submission)
	return nil
}

func (r *fakeSubmissionRepo) Update(ctx context.Context, submission *entity.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == submission.ID {
			r.items[i] = *submission
			return nil
		}
	}
	return entity.ErrSubmissionNotFound
}

var errDiskFull = errors.New("write history: no space left on device")
