package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the handlers and cross-cutting settings needed to
// assemble the API.
type RouterConfig struct {
	Content     *ContentHandler
	Assignments *AssignmentHandler
	Users       *UserHandler

	CORSAllowOrigins []string
	Middleware       []gin.HandlerFunc
}

// NewRouter wires every route group onto a fresh engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	for _, mw := range cfg.Middleware {
		r.Use(mw)
	}
	if len(cfg.CORSAllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
		}))
	}

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	if h := cfg.Content; h != nil {
		api.GET("/courses", h.ListCourses)
		api.GET("/courses/:id", h.GetCourse)
		api.GET("/knowledge", h.ListKnowledge)
		api.GET("/knowledge/:id", h.GetKnowledge)
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:id", h.GetCase)
		api.GET("/prompts", h.ListPrompts)
		// Static segment registered before the :id wildcard so
		// "recommendations" never resolves as a prompt ID.
		api.GET("/prompts/recommendations", h.RecommendPrompts)
		api.GET("/prompts/:id", h.GetPrompt)
		api.GET("/workflows", h.ListWorkflows)
		api.GET("/workflows/:id", h.GetWorkflow)
		api.GET("/resources", h.ListResources)
		api.GET("/resources/:id", h.GetResource)
	}

	if h := cfg.Assignments; h != nil {
		api.GET("/assignments", h.List)
		api.GET("/assignments/submissions/:submissionId", h.GetSubmission)
		api.PATCH("/assignments/submissions/:submissionId", h.Review)
		api.GET("/assignments/:id", h.Get)
		api.GET("/assignments/:id/submissions", h.ListSubmissions)
		api.POST("/assignments/:id/submit", h.Submit)
	}

	if h := cfg.Users; h != nil {
		users := api.Group("/users/:userId")
		users.GET("/progress", h.ListProgress)
		users.POST("/progress", h.SaveProgress)
		users.GET("/favorites", h.ListFavorites)
		users.POST("/favorites", h.AddFavorite)
		users.DELETE("/favorites/:itemType/:itemId", h.RemoveFavorite)
		users.GET("/history", h.ListHistory)
		users.POST("/history", h.RecordHistory)
		users.GET("/submissions", h.ListSubmissions)
	}

	return r
}
