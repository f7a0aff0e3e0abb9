package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
)

// FavoriteRepository stores bookmark triples. Add reports false when the
// triple already exists (dedup on insert); Remove returns
// entity.ErrFavoriteNotFound for an unknown triple.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.UserFavorite, error)
	Add(ctx context.Context, favorite entity.UserFavorite) (bool, error)
	Remove(ctx context.Context, userID, itemID string, itemType entity.ItemType) error
}
