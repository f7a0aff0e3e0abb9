package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/atelier/internal/usecase"
)

// ContentHandler serves the read-only content collections.
type ContentHandler struct {
	logger  *logrus.Logger
	content usecase.ContentUsecase
}

// NewContentHandler creates the content route handler.
func NewContentHandler(logger *logrus.Logger, content usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{logger: logger, content: content}
}

func (h *ContentHandler) ListCourses(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListCourses(c.Request.Context(), filter, page))
}

func (h *ContentHandler) GetCourse(c *gin.Context) {
	course, err := h.content.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, course)
}

func (h *ContentHandler) ListKnowledge(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListKnowledge(c.Request.Context(), filter, page))
}

func (h *ContentHandler) GetKnowledge(c *gin.Context) {
	card, err := h.content.GetKnowledge(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, card)
}

func (h *ContentHandler) ListCases(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListCases(c.Request.Context(), filter, page))
}

func (h *ContentHandler) GetCase(c *gin.Context) {
	cs, err := h.content.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, cs)
}

func (h *ContentHandler) ListPrompts(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListPrompts(c.Request.Context(), usecase.ListPromptsQuery{
		Filter:    filter,
		Page:      page,
		Type:      c.Query("type"),
		IsPremium: boolQuery(c, "isPremium"),
	}))
}

func (h *ContentHandler) GetPrompt(c *gin.Context) {
	prompt, err := h.content.GetPrompt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, prompt)
}

// recommendationData mirrors the legacy payload: relatedCourseSection is
// present only for section-scoped recommendations.
type recommendationData struct {
	Prompts              any    `json:"prompts"`
	Reason               string `json:"reason"`
	RelatedCourseSection string `json:"relatedCourseSection,omitempty"`
}

func (h *ContentHandler) RecommendPrompts(c *gin.Context) {
	rec := h.content.RecommendPrompts(c.Request.Context(), usecase.RecommendationQuery{
		CourseSection: c.Query("courseSection"),
		CourseID:      c.Query("courseId"),
		Difficulty:    c.Query("difficulty"),
		Limit:         intQuery(c, "limit"),
	})
	respondOK(c, recommendationData{
		Prompts:              rec.Prompts,
		Reason:               rec.Reason,
		RelatedCourseSection: rec.RelatedCourseSection,
	})
}

func (h *ContentHandler) ListWorkflows(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListWorkflows(c.Request.Context(), filter, page))
}

func (h *ContentHandler) GetWorkflow(c *gin.Context) {
	wf, err := h.content.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, wf)
}

func (h *ContentHandler) ListResources(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.content.ListResources(c.Request.Context(), usecase.ListResourcesQuery{
		Filter:    filter,
		Page:      page,
		Type:      c.Query("type"),
		IsPremium: boolQuery(c, "isPremium"),
	}))
}

func (h *ContentHandler) GetResource(c *gin.Context) {
	res, err := h.content.GetResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, res)
}
