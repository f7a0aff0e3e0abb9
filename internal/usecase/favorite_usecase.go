package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/repository"
)

// FavoriteUsecase manages bookmark triples. Adding a favorite also appends
// a history entry; the two writes hit different files and are not atomic.
// When the history append fails the favorite stays persisted and the
// error is returned to the caller rather than swallowed.
type FavoriteUsecase interface {
	List(ctx context.Context, userID string) ([]entity.UserFavorite, error)
	// Add reports created=false when the triple already existed.
	Add(ctx context.Context, userID, itemID, itemType string) (*entity.UserFavorite, bool, error)
	Remove(ctx context.Context, userID, itemID, itemType string) error
}

// NewFavoriteUsecase wires the favorite and history repositories.
func NewFavoriteUsecase(favorites repository.FavoriteRepository, history repository.HistoryRepository) FavoriteUsecase {
	return &favoriteUsecase{favorites: favorites, history: history, clock: time.Now}
}

type favoriteUsecase struct {
	favorites repository.FavoriteRepository
	history   repository.HistoryRepository
	clock     func() time.Time
}

func (u *favoriteUsecase) List(ctx context.Context, userID string) ([]entity.UserFavorite, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	return u.favorites.ListByUser(ctx, userID)
}

func (u *favoriteUsecase) Add(ctx context.Context, userID, itemID, itemType string) (*entity.UserFavorite, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, false, entity.ErrInvalidUserID
	}
	kind, ok := entity.ParseItemType(itemType)
	if !ok || strings.TrimSpace(itemID) == "" {
		return nil, false, entity.ErrInvalidItemType
	}

	favorite := entity.UserFavorite{
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  kind,
		CreatedAt: u.clock(),
	}
	created, err := u.favorites.Add(ctx, favorite)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return &favorite, false, nil
	}

	err = u.history.Append(ctx, entity.UserHistoryItem{
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  kind,
		Action:    entity.ActionFavorite,
		Timestamp: favorite.CreatedAt,
	})
	if err != nil {
		return &favorite, true, fmt.Errorf("favorite saved but history append failed: %w", err)
	}
	return &favorite, true, nil
}

func (u *favoriteUsecase) Remove(ctx context.Context, userID, itemID, itemType string) error {
	if strings.TrimSpace(userID) == "" {
		return entity.ErrInvalidUserID
	}
	kind, ok := entity.ParseItemType(itemType)
	if !ok {
		return entity.ErrInvalidItemType
	}
	return u.favorites.Remove(ctx, userID, itemID, kind)
}
