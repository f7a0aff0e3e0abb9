package entity

import "errors"

// Domain errors shared across usecases and mapped to HTTP statuses at the
// REST boundary.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrKnowledgeNotFound  = errors.New("knowledge card not found")
	ErrCaseNotFound       = errors.New("case study not found")
	ErrPromptNotFound     = errors.New("prompt not found")
	ErrWorkflowNotFound   = errors.New("workflow not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrInvalidAction     = errors.New("invalid history action")
	ErrInvalidCourseID   = errors.New("invalid course ID")
	ErrInvalidProgress   = errors.New("progress percentage must be between 0 and 100")
	ErrInvalidStatus     = errors.New("invalid submission status")
	ErrInvalidTransition = errors.New("submission status cannot move backwards")
	ErrInvalidScore      = errors.New("score must be between 0 and 100")
)
