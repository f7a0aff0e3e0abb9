package repository

import (
	"context"
	"sort"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/repository"
	"github.com/samber/lo"
)

type historyRepository struct {
	store *filestore.Store
}

// NewHistoryRepository returns a file-store backed HistoryRepository.
func NewHistoryRepository(store *filestore.Store) repository.HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.UserHistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var all []entity.UserHistoryItem
	if err := r.store.Read(collectionHistory, &all); err != nil {
		return nil, err
	}
	mine := lo.Filter(all, func(h entity.UserHistoryItem, _ int) bool {
		return h.UserID == userID
	})
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Timestamp.After(mine[j].Timestamp)
	})
	if limit > 0 && len(mine) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

func (r *historyRepository) Append(ctx context.Context, item entity.UserHistoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var all []entity.UserHistoryItem
	if err := r.store.Read(collectionHistory, &all); err != nil {
		return err
	}
	all = append(all, item)
	return r.store.Write(collectionHistory, all)
}
