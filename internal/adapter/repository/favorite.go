package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/repository"
	"github.com/samber/lo"
)

type favoriteRepository struct {
	store *filestore.Store
}

// NewFavoriteRepository returns a file-store backed FavoriteRepository.
func NewFavoriteRepository(store *filestore.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (r *favoriteRepository) load() ([]entity.UserFavorite, error) {
	var all []entity.UserFavorite
	if err := r.store.Read(collectionFavorites, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]entity.UserFavorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(f entity.UserFavorite, _ int) bool {
		return f.UserID == userID
	}), nil
}

func (r *favoriteRepository) Add(ctx context.Context, favorite entity.UserFavorite) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	all, err := r.load()
	if err != nil {
		return false, err
	}
	for _, f := range all {
		if f.Matches(favorite.UserID, favorite.ItemID, favorite.ItemType) {
			return false, nil
		}
	}
	all = append(all, favorite)
	if err := r.store.Write(collectionFavorites, all); err != nil {
		return false, err
	}
	return true, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, itemID string, itemType entity.ItemType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	all, err := r.load()
	if err != nil {
		return err
	}
	kept := lo.Filter(all, func(f entity.UserFavorite, _ int) bool {
		return !f.Matches(userID, itemID, itemType)
	})
	if len(kept) == len(all) {
		return entity.ErrFavoriteNotFound
	}
	return r.store.Write(collectionFavorites, kept)
}
