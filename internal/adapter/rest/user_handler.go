package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/atelier/internal/usecase"
)

// UserHandler serves per-user mutable state: progress, favorites, history
// and submission listings.
type UserHandler struct {
	logger      *logrus.Logger
	progress    usecase.ProgressUsecase
	favorites   usecase.FavoriteUsecase
	history     usecase.HistoryUsecase
	assignments usecase.AssignmentUsecase
}

// NewUserHandler creates the user-state route handler.
func NewUserHandler(
	logger *logrus.Logger,
	progress usecase.ProgressUsecase,
	favorites usecase.FavoriteUsecase,
	history usecase.HistoryUsecase,
	assignments usecase.AssignmentUsecase,
) *UserHandler {
	return &UserHandler{
		logger:      logger,
		progress:    progress,
		favorites:   favorites,
		history:     history,
		assignments: assignments,
	}
}

func (h *UserHandler) ListProgress(c *gin.Context) {
	records, err := h.progress.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, records)
}

type progressRequest struct {
	CourseID           string   `json:"courseId" binding:"required"`
	CompletedSections  []string `json:"completedSections"`
	CurrentSection     *string  `json:"currentSection"`
	ProgressPercentage *int     `json:"progressPercentage"`
}

func (h *UserHandler) SaveProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	record, err := h.progress.Save(c.Request.Context(), c.Param("userId"), usecase.ProgressInput{
		CourseID:           req.CourseID,
		CompletedSections:  req.CompletedSections,
		CurrentSection:     req.CurrentSection,
		ProgressPercentage: req.ProgressPercentage,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, record, "progress saved")
}

func (h *UserHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.favorites.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, favorites)
}

type favoriteRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	favorite, created, err := h.favorites.Add(c.Request.Context(), c.Param("userId"), req.ItemID, req.ItemType)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !created {
		respondMessage(c, favorite, "already favorited")
		return
	}
	respondMessage(c, favorite, "favorite added")
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	err := h.favorites.Remove(c.Request.Context(), c.Param("userId"), c.Param("itemId"), c.Param("itemType"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, nil, "favorite removed")
}

func (h *UserHandler) ListHistory(c *gin.Context) {
	items, err := h.history.List(c.Request.Context(), c.Param("userId"), intQuery(c, "limit"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, items)
}

type historyRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

func (h *UserHandler) RecordHistory(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	item, err := h.history.Record(c.Request.Context(), c.Param("userId"), req.ItemID, req.ItemType, req.Action)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, item, "history recorded")
}

func (h *UserHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.assignments.ListUserSubmissions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, subs)
}
