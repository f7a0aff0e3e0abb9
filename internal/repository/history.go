package repository

import (
	"context"

	"github.com/eslsoft/atelier/internal/entity"
)

// HistoryRepository is an append-only activity log. ListByUser returns
// entries newest first, truncated to limit when limit is positive.
type HistoryRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.UserHistoryItem, error)
	Append(ctx context.Context, item entity.UserHistoryItem) error
}
