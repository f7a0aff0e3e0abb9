package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/repository"
)

// HistoryUsecase reads and appends the per-user activity log.
type HistoryUsecase interface {
	List(ctx context.Context, userID string, limit int) ([]entity.UserHistoryItem, error)
	Record(ctx context.Context, userID, itemID, itemType, action string) (*entity.UserHistoryItem, error)
}

// NewHistoryUsecase wires the repository with default behaviour.
func NewHistoryUsecase(repo repository.HistoryRepository) HistoryUsecase {
	return &historyUsecase{repo: repo, clock: time.Now}
}

type historyUsecase struct {
	repo  repository.HistoryRepository
	clock func() time.Time
}

func (u *historyUsecase) List(ctx context.Context, userID string, limit int) ([]entity.UserHistoryItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID, limit)
}

func (u *historyUsecase) Record(ctx context.Context, userID, itemID, itemType, action string) (*entity.UserHistoryItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	kind, ok := entity.ParseItemType(itemType)
	if !ok || strings.TrimSpace(itemID) == "" {
		return nil, entity.ErrInvalidItemType
	}
	act, ok := entity.ParseHistoryAction(action)
	if !ok {
		return nil, entity.ErrInvalidAction
	}

	item := entity.UserHistoryItem{
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  kind,
		Action:    act,
		Timestamp: u.clock(),
	}
	if err := u.repo.Append(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}
