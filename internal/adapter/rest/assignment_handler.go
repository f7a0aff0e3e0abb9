package rest

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/usecase"
)

// DemoUserID stands in for authentication: the app serves a single demo
// account and user routes address state by explicit userId.
const DemoUserID = "demo-user"

// UploadPolicy bounds submission uploads.
type UploadPolicy struct {
	Dir         string
	MaxFiles    int
	MaxFileSize int64
}

// Upload MIME allow-list: images, documents and short video walkthroughs.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// AssignmentHandler serves assignment definitions and the submission
// lifecycle, including multipart uploads.
type AssignmentHandler struct {
	logger      *logrus.Logger
	assignments usecase.AssignmentUsecase
	uploads     UploadPolicy
}

// NewAssignmentHandler creates the assignment route handler.
func NewAssignmentHandler(logger *logrus.Logger, assignments usecase.AssignmentUsecase, uploads UploadPolicy) *AssignmentHandler {
	return &AssignmentHandler{logger: logger, assignments: assignments, uploads: uploads}
}

func (h *AssignmentHandler) List(c *gin.Context) {
	filter, page := parseListParams(c)
	respondOK(c, h.assignments.List(c.Request.Context(), filter, page))
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.assignments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, assignment)
}

func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.assignments.ListSubmissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, subs)
}

// Submit accepts a multipart form: userId, note and status fields plus up
// to MaxFiles uploads. Upload policy violations are client errors (400),
// not server faults.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, 400, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}

	userID := c.PostForm("userId")
	if userID == "" {
		userID = DemoUserID
	}
	status := entity.SubmissionStatus(c.PostForm("status"))
	if status == "" {
		status = entity.StatusSubmitted
	}

	uploads := form.File["files"]
	if len(uploads) > h.uploads.MaxFiles {
		respondError(c, 400, fmt.Sprintf("at most %d files per submission", h.uploads.MaxFiles))
		return
	}
	for _, f := range uploads {
		if err := h.checkUpload(f); err != nil {
			respondError(c, 400, err.Error())
			return
		}
	}

	// The assignment must exist before any upload lands on disk, so a
	// rejected submission leaves no trace.
	if _, err := h.assignments.Get(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}

	// Uploads land on disk before the submission record references them.
	files := make([]entity.SubmissionFile, 0, len(uploads))
	for _, f := range uploads {
		id := uuid.NewString()
		dest := filepath.Join(h.uploads.Dir, id+filepath.Ext(f.Filename))
		if err := c.SaveUploadedFile(f, dest); err != nil {
			h.logger.WithError(err).Error("failed to store upload")
			respondError(c, 500, "failed to store upload")
			return
		}
		files = append(files, entity.SubmissionFile{
			ID:         id,
			Name:       filepath.Base(f.Filename),
			Size:       f.Size,
			MimeType:   f.Header.Get("Content-Type"),
			Path:       dest,
			UploadedAt: time.Now(),
		})
	}

	submission, err := h.assignments.Submit(c.Request.Context(), c.Param("id"), usecase.SubmitInput{
		UserID: userID,
		Status: status,
		Note:   c.PostForm("note"),
		Files:  files,
	})
	if err != nil {
		// The submission was never recorded, so drop its uploads too.
		for _, f := range files {
			if rmErr := os.Remove(f.Path); rmErr != nil {
				h.logger.WithError(rmErr).Warnf("failed to remove orphaned upload %s", f.Path)
			}
		}
		respondDomainError(c, err)
		return
	}
	respondMessage(c, submission, "submission saved")
}

func (h *AssignmentHandler) checkUpload(f *multipart.FileHeader) error {
	if f.Size > h.uploads.MaxFileSize {
		return fmt.Errorf("file %s exceeds the %d byte limit", f.Filename, h.uploads.MaxFileSize)
	}
	if ct := f.Header.Get("Content-Type"); !allowedUploadTypes[ct] {
		return fmt.Errorf("file type %q is not allowed", ct)
	}
	return nil
}

func (h *AssignmentHandler) GetSubmission(c *gin.Context) {
	submission, err := h.assignments.GetSubmission(c.Request.Context(), c.Param("submissionId"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, submission)
}

type reviewRequest struct {
	Status   *string `json:"status"`
	Score    *int    `json:"score"`
	Feedback *string `json:"feedback"`
}

// Review is the PATCH grading path: status, score and feedback, each
// optional.
func (h *AssignmentHandler) Review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	input := usecase.ReviewInput{Score: req.Score, Feedback: req.Feedback}
	if req.Status != nil {
		status, ok := entity.ParseSubmissionStatus(*req.Status)
		if !ok {
			respondDomainError(c, entity.ErrInvalidStatus)
			return
		}
		input.Status = &status
	}

	submission, err := h.assignments.Review(c.Request.Context(), c.Param("submissionId"), input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, submission)
}
