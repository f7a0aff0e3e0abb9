package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/catalog"
	"github.com/eslsoft/atelier/internal/repository"
	"github.com/eslsoft/atelier/pkg/listquery"
)

// SubmitInput is one submit call: a draft save or a (re)submission.
// Files here are already stored on disk; only their metadata flows
// through.
type SubmitInput struct {
	UserID string
	Status entity.SubmissionStatus
	Note   string
	Files  []entity.SubmissionFile
}

// ReviewInput is the grading-path patch. Nil fields stay untouched.
type ReviewInput struct {
	Status   *entity.SubmissionStatus
	Score    *int
	Feedback *string
}

// AssignmentUsecase serves assignment definitions and runs the submission
// lifecycle: draft -> submitted -> graded, forward-only, files appended
// across resubmissions, SubmittedAt stamped once.
type AssignmentUsecase interface {
	List(ctx context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Assignment]
	Get(ctx context.Context, id string) (*entity.Assignment, error)
	ListSubmissions(ctx context.Context, assignmentID string) ([]entity.Submission, error)
	ListUserSubmissions(ctx context.Context, userID string) ([]entity.Submission, error)
	Submit(ctx context.Context, assignmentID string, input SubmitInput) (*entity.Submission, error)
	GetSubmission(ctx context.Context, id string) (*entity.Submission, error)
	Review(ctx context.Context, submissionID string, input ReviewInput) (*entity.Submission, error)
}

// NewAssignmentUsecase wires the catalog and repositories.
func NewAssignmentUsecase(cat *catalog.Catalog, submissions repository.SubmissionRepository, history repository.HistoryRepository) AssignmentUsecase {
	return &assignmentUsecase{
		catalog:     cat,
		submissions: submissions,
		history:     history,
		clock:       time.Now,
		newID:       uuid.NewString,
	}
}

type assignmentUsecase struct {
	catalog     *catalog.Catalog
	submissions repository.SubmissionRepository
	history     repository.HistoryRepository
	clock       func() time.Time
	newID       func() string
}

func (u *assignmentUsecase) List(_ context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Assignment] {
	filtered := listquery.Apply(u.catalog.Assignments, filter, func(a entity.Assignment) listquery.Fields {
		return listquery.Fields{
			Category:   a.Category,
			Difficulty: string(a.Difficulty),
			Tags:       a.Tags,
			SearchText: []string{a.Title, a.Description},
		}
	})
	return listquery.Paginate(filtered, page)
}

func (u *assignmentUsecase) Get(_ context.Context, id string) (*entity.Assignment, error) {
	return u.findAssignment(id)
}

func (u *assignmentUsecase) findAssignment(id string) (*entity.Assignment, error) {
	for i := range u.catalog.Assignments {
		if u.catalog.Assignments[i].ID == id {
			return &u.catalog.Assignments[i], nil
		}
	}
	return nil, entity.ErrAssignmentNotFound
}

func (u *assignmentUsecase) ListSubmissions(ctx context.Context, assignmentID string) ([]entity.Submission, error) {
	if _, err := u.findAssignment(assignmentID); err != nil {
		return nil, err
	}
	return u.submissions.ListByAssignment(ctx, assignmentID)
}

func (u *assignmentUsecase) ListUserSubmissions(ctx context.Context, userID string) ([]entity.Submission, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	return u.submissions.ListByUser(ctx, userID)
}

// Submit creates the user's first submission for an assignment or updates
// their latest one. The assignment lookup runs before any write, so an
// unknown assignment never leaves a partial record behind.
func (u *assignmentUsecase) Submit(ctx context.Context, assignmentID string, input SubmitInput) (*entity.Submission, error) {
	if _, err := u.findAssignment(assignmentID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	status := input.Status
	if status == "" {
		status = entity.StatusSubmitted
	}
	// Grading is not reachable from the submit path.
	if status != entity.StatusDraft && status != entity.StatusSubmitted {
		return nil, entity.ErrInvalidStatus
	}

	now := u.clock()
	latest, err := u.submissions.FindLatest(ctx, input.UserID, assignmentID)
	if err != nil {
		return nil, err
	}

	var record *entity.Submission
	if latest == nil {
		record = &entity.Submission{
			ID:           u.newID(),
			AssignmentID: assignmentID,
			UserID:       input.UserID,
			Status:       status,
			Note:         input.Note,
			Files:        append([]entity.SubmissionFile{}, input.Files...),
			CreatedAt:    now,
		}
	} else {
		if !latest.Status.CanTransitionTo(status) {
			return nil, entity.ErrInvalidTransition
		}
		record = latest
		record.Status = status
		if input.Note != "" {
			record.Note = input.Note
		}
		// Resubmissions accumulate files; nothing is replaced.
		record.Files = append(record.Files, input.Files...)
	}
	record.UpdatedAt = now
	if status == entity.StatusSubmitted && record.SubmittedAt == nil {
		at := now
		record.SubmittedAt = &at
	}

	if latest == nil {
		err = u.submissions.Create(ctx, record)
	} else {
		err = u.submissions.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	if status == entity.StatusSubmitted {
		if err := u.history.Append(ctx, entity.UserHistoryItem{
			UserID:    input.UserID,
			ItemID:    assignmentID,
			ItemType:  entity.ItemTypeAssignment,
			Action:    entity.ActionSubmit,
			Timestamp: now,
		}); err != nil {
			return record, fmt.Errorf("submission saved but history append failed: %w", err)
		}
	}
	return record, nil
}

func (u *assignmentUsecase) GetSubmission(ctx context.Context, id string) (*entity.Submission, error) {
	return u.submissions.GetByID(ctx, id)
}

// Review applies the grading patch: optional forward-only status change,
// score within 0..100, feedback text.
func (u *assignmentUsecase) Review(ctx context.Context, submissionID string, input ReviewInput) (*entity.Submission, error) {
	record, err := u.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := *input.Status
		if _, ok := entity.ParseSubmissionStatus(string(next)); !ok {
			return nil, entity.ErrInvalidStatus
		}
		if !record.Status.CanTransitionTo(next) {
			return nil, entity.ErrInvalidTransition
		}
		record.Status = next
		if next == entity.StatusSubmitted && record.SubmittedAt == nil {
			at := u.clock()
			record.SubmittedAt = &at
		}
	}
	if input.Score != nil {
		if *input.Score < 0 || *input.Score > 100 {
			return nil, entity.ErrInvalidScore
		}
		record.Score = input.Score
	}
	if input.Feedback != nil {
		record.Feedback = *input.Feedback
	}
	record.UpdatedAt = u.clock()

	if err := u.submissions.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
