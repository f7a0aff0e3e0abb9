package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "github.com/eslsoft/atelier/internal/adapter/repository"
	"github.com/eslsoft/atelier/internal/adapter/rest"
	"github.com/eslsoft/atelier/internal/infrastructure/catalog"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := newTestRouterWithUploads(t)
	return r
}

func newTestRouterWithUploads(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load()
	require.NoError(t, err)
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	historyRepo := adapterrepo.NewHistoryRepository(store)
	content := usecase.NewContentUsecase(cat)
	progress := usecase.NewProgressUsecase(adapterrepo.NewProgressRepository(store))
	favorites := usecase.NewFavoriteUsecase(adapterrepo.NewFavoriteRepository(store), historyRepo)
	history := usecase.NewHistoryUsecase(historyRepo)
	assignments := usecase.NewAssignmentUsecase(cat, adapterrepo.NewSubmissionRepository(store), historyRepo)

	uploadDir := t.TempDir()
	return rest.NewRouter(rest.RouterConfig{
		Content: rest.NewContentHandler(logger, content),
		Assignments: rest.NewAssignmentHandler(logger, assignments, rest.UploadPolicy{
			Dir:         uploadDir,
			MaxFiles:    2,
			MaxFileSize: 1 << 20,
		}),
		Users: rest.NewUserHandler(logger, progress, favorites, history, assignments),
	}), uploadDir
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

type listPage struct {
	Items      []map[string]any `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

func decodeList(t *testing.T, env envelope) listPage {
	t.Helper()
	var page listPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	return page
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListKnowledgeDifficultyFilter(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/knowledge?difficulty=advance&pageSize=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	page := decodeList(t, env)
	require.NotEmpty(t, page.Items)
	assert.Equal(t, len(page.Items), page.Total)
	for _, item := range page.Items {
		assert.Equal(t, "advance", item["difficulty"])
	}

	// Legacy spelling filters the same slice.
	_, legacyEnv := doJSON(t, r, http.MethodGet, "/api/knowledge?difficulty=intermediate&pageSize=100", nil)
	assert.Equal(t, page.Total, decodeList(t, legacyEnv).Total)
}

func TestListKnowledgePagination(t *testing.T) {
	r := newTestRouter(t)

	_, all := doJSON(t, r, http.MethodGet, "/api/knowledge?pageSize=100", nil)
	total := decodeList(t, all).Total
	require.Greater(t, total, 5)

	_, env := doJSON(t, r, http.MethodGet, "/api/knowledge?page=1&pageSize=5", nil)
	page := decodeList(t, env)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, total, page.Total)
	assert.Equal(t, (total+4)/5, page.TotalPages)

	// Out-of-range pages return an empty slice, not an error.
	_, beyond := doJSON(t, r, http.MethodGet, "/api/knowledge?page=99&pageSize=5", nil)
	assert.Empty(t, decodeList(t, beyond).Items)

	// Garbage paging coerces to the defaults.
	_, garbage := doJSON(t, r, http.MethodGet, "/api/knowledge?page=abc&pageSize=-3", nil)
	got := decodeList(t, garbage)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.PageSize)
}

func TestGetUnknownIDsReturn404(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{
		"/api/courses/nope",
		"/api/knowledge/nope",
		"/api/prompts/nope",
		"/api/assignments/nope",
		"/api/assignments/submissions/nope",
	} {
		w, env := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.False(t, env.Success, path)
		assert.NotEmpty(t, env.Error, path)
	}
}

func TestRecommendationReasons(t *testing.T) {
	r := newTestRouter(t)

	var rec struct {
		Prompts              []map[string]any `json:"prompts"`
		Reason               string           `json:"reason"`
		RelatedCourseSection string           `json:"relatedCourseSection"`
	}

	_, env := doJSON(t, r, http.MethodGet, "/api/prompts/recommendations?courseSection=course-01-theory", nil)
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "Recommendations based on course section: course-01-theory", rec.Reason)
	assert.Equal(t, "course-01-theory", rec.RelatedCourseSection)

	_, env = doJSON(t, r, http.MethodGet, "/api/prompts/recommendations?courseId=course-01", nil)
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "Recommendations based on course: course-01", rec.Reason)

	_, env = doJSON(t, r, http.MethodGet, "/api/prompts/recommendations", nil)
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "General recommendations", rec.Reason)
	assert.LessOrEqual(t, len(rec.Prompts), 5)
}

func TestSaveProgressValidation(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/demo-user/progress", map[string]any{
		"progressPercentage": 50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing courseId")

	w, _ = doJSON(t, r, http.MethodPost, "/api/users/demo-user/progress", map[string]any{
		"courseId":           "course-01",
		"progressPercentage": 150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "out-of-range percentage")
}

func TestProgressPartialMerge(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/demo-user/progress", map[string]any{
		"courseId":           "course-01",
		"completedSections":  []string{"course-01-theory"},
		"currentSection":     "course-01-color",
		"progressPercentage": 25,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A later save without completedSections must not wipe them.
	w, env := doJSON(t, r, http.MethodPost, "/api/users/demo-user/progress", map[string]any{
		"courseId":           "course-01",
		"progressPercentage": 50,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var record struct {
		CompletedSections  []string `json:"completedSections"`
		CurrentSection     string   `json:"currentSection"`
		ProgressPercentage int      `json:"progressPercentage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, []string{"course-01-theory"}, record.CompletedSections)
	assert.Equal(t, "course-01-color", record.CurrentSection)
	assert.Equal(t, 50, record.ProgressPercentage)

	_, listEnv := doJSON(t, r, http.MethodGet, "/api/users/demo-user/progress", nil)
	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(listEnv.Data, &records))
	assert.Len(t, records, 1)
}

func TestFavoriteDedupAndHistory(t *testing.T) {
	r := newTestRouter(t)
	body := map[string]any{"itemId": "kc-001", "itemType": "knowledge"}

	w, env := doJSON(t, r, http.MethodPost, "/api/users/demo-user/favorites", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "favorite added", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/users/demo-user/favorites", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "already favorited", env.Message)

	_, listEnv := doJSON(t, r, http.MethodGet, "/api/users/demo-user/favorites", nil)
	var favorites []map[string]any
	require.NoError(t, json.Unmarshal(listEnv.Data, &favorites))
	assert.Len(t, favorites, 1)

	// Only the first add leaves a history trace.
	_, histEnv := doJSON(t, r, http.MethodGet, "/api/users/demo-user/history", nil)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(histEnv.Data, &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "favorite", items[0]["action"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/users/demo-user/favorites/knowledge/kc-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, listEnv = doJSON(t, r, http.MethodGet, "/api/users/demo-user/favorites", nil)
	favorites = nil
	require.NoError(t, json.Unmarshal(listEnv.Data, &favorites))
	assert.Empty(t, favorites)
}

func TestFavoriteRejectsBadItemType(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/users/demo-user/favorites", map[string]any{
		"itemId":   "kc-001",
		"itemType": "banana",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartSubmission(t *testing.T, fields map[string]string, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, filename))
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postMultipart(t *testing.T, r *gin.Engine, path string, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSubmitAssignmentWithUpload(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartSubmission(t, map[string]string{
		"note": "first take",
	}, "moodboard.png", "image/png", []byte("png-bytes"))
	w, env := postMultipart(t, r, "/api/assignments/asg-01/submit", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var submission struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
		Status string `json:"status"`
		Files  []struct {
			Name     string `json:"name"`
			MimeType string `json:"mimeType"`
		} `json:"files"`
		SubmittedAt *string `json:"submittedAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submission))
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, rest.DemoUserID, submission.UserID)
	assert.Equal(t, "submitted", submission.Status)
	require.Len(t, submission.Files, 1)
	assert.Equal(t, "moodboard.png", submission.Files[0].Name)
	assert.Equal(t, "image/png", submission.Files[0].MimeType)
	assert.NotNil(t, submission.SubmittedAt)

	_, listEnv := doJSON(t, r, http.MethodGet, "/api/assignments/asg-01/submissions", nil)
	var subs []map[string]any
	require.NoError(t, json.Unmarshal(listEnv.Data, &subs))
	assert.Len(t, subs, 1)

	_, userEnv := doJSON(t, r, http.MethodGet, "/api/users/demo-user/submissions", nil)
	subs = nil
	require.NoError(t, json.Unmarshal(userEnv.Data, &subs))
	assert.Len(t, subs, 1)
}

func TestSubmitRejectsDisallowedUpload(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartSubmission(t, nil, "payload.exe", "application/x-msdownload", []byte("mz"))
	w, env := postMultipart(t, r, "/api/assignments/asg-01/submit", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "not allowed")
}

func TestSubmitUnknownAssignment(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartSubmission(t, map[string]string{"note": "x"}, "", "", nil)
	w, _ := postMultipart(t, r, "/api/assignments/nope/submit", body, contentType)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectedSubmitLeavesNoUploads(t *testing.T) {
	r, uploadDir := newTestRouterWithUploads(t)

	body, contentType := multipartSubmission(t, nil, "moodboard.png", "image/png", []byte("png-bytes"))
	w, _ := postMultipart(t, r, "/api/assignments/nope/submit", body, contentType)
	require.Equal(t, http.StatusNotFound, w.Code)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a 404 submit must not persist uploads")

	// A rejected status is cleaned up the same way.
	body, contentType = multipartSubmission(t, map[string]string{"status": "graded"}, "take.png", "image/png", []byte("png-bytes"))
	w, _ = postMultipart(t, r, "/api/assignments/asg-01/submit", body, contentType)
	require.Equal(t, http.StatusBadRequest, w.Code)

	entries, err = os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a rejected submit must not persist uploads")
}

func TestReviewSubmission(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartSubmission(t, map[string]string{"note": "grade me"}, "", "", nil)
	w, env := postMultipart(t, r, "/api/assignments/asg-01/submit", body, contentType)
	require.Equal(t, http.StatusOK, w.Code)

	var submission struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submission))
	require.NotEmpty(t, submission.ID)

	path := "/api/assignments/submissions/" + submission.ID
	status := "graded"
	score := 95
	feedback := "strong composition"
	w, env = doJSON(t, r, http.MethodPatch, path, map[string]any{
		"status":   status,
		"score":    score,
		"feedback": feedback,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var graded struct {
		Status   string `json:"status"`
		Score    *int   `json:"score"`
		Feedback string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &graded))
	assert.Equal(t, "graded", graded.Status)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 95, *graded.Score)
	assert.Equal(t, "strong composition", graded.Feedback)

	// Status never moves backwards.
	w, _ = doJSON(t, r, http.MethodPatch, path, map[string]any{"status": "draft"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Scores are clamped to the grading scale.
	w, _ = doJSON(t, r, http.MethodPatch, path, map[string]any{"score": 101})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPremiumFilterOnResources(t *testing.T) {
	r := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodGet, "/api/resources?isPremium=false&pageSize=100", nil)
	page := decodeList(t, env)
	require.NotEmpty(t, page.Items)
	for _, item := range page.Items {
		assert.Equal(t, false, item["isPremium"])
	}
}
