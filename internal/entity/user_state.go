package entity

import "time"

// UserProgress tracks one user's position inside one course. At most one
// record exists per (UserID, CourseID) pair; saves replace the existing
// record rather than appending.
type UserProgress struct {
	UserID             string     `json:"userId"`
	CourseID           string     `json:"courseId"`
	CompletedSections  []string   `json:"completedSections"`
	CurrentSection     string     `json:"currentSection,omitempty"`
	ProgressPercentage int        `json:"progressPercentage"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Normalize fills timestamps and stamps completion when the course is done.
func (p *UserProgress) Normalize(now time.Time) {
	if p.StartedAt.IsZero() {
		p.StartedAt = now
	}
	p.UpdatedAt = now
	if p.CompletedSections == nil {
		p.CompletedSections = []string{}
	}
	if p.ProgressPercentage >= 100 && p.CompletedAt == nil {
		at := now
		p.CompletedAt = &at
	}
}

// UserFavorite bookmarks a content item. The (UserID, ItemID, ItemType)
// triple is unique; duplicate adds are dropped on insert.
type UserFavorite struct {
	UserID    string    `json:"userId"`
	ItemID    string    `json:"itemId"`
	ItemType  ItemType  `json:"itemType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Matches reports whether f refers to the same triple.
func (f UserFavorite) Matches(userID, itemID string, itemType ItemType) bool {
	return f.UserID == userID && f.ItemID == itemID && f.ItemType == itemType
}

// HistoryAction names what the user did with an item.
type HistoryAction string

const (
	ActionView     HistoryAction = "view"
	ActionComplete HistoryAction = "complete"
	ActionFavorite HistoryAction = "favorite"
	ActionSubmit   HistoryAction = "submit"
)

// ParseHistoryAction normalizes a raw action string.
func ParseHistoryAction(value string) (HistoryAction, bool) {
	switch HistoryAction(value) {
	case ActionView, ActionComplete, ActionFavorite, ActionSubmit:
		return HistoryAction(value), true
	default:
		return "", false
	}
}

// UserHistoryItem is one append-only activity log entry.
type UserHistoryItem struct {
	UserID    string        `json:"userId"`
	ItemID    string        `json:"itemId"`
	ItemType  ItemType      `json:"itemType"`
	Action    HistoryAction `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// SubmissionStatus is the lifecycle stage of an assignment submission.
type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"
	StatusSubmitted SubmissionStatus = "submitted"
	StatusGraded    SubmissionStatus = "graded"
)

var statusRank = map[SubmissionStatus]int{
	StatusDraft:     0,
	StatusSubmitted: 1,
	StatusGraded:    2,
}

// ParseSubmissionStatus normalizes a raw status string.
func ParseSubmissionStatus(value string) (SubmissionStatus, bool) {
	s := SubmissionStatus(value)
	_, ok := statusRank[s]
	return s, ok
}

// CanTransitionTo enforces the forward-only lifecycle
// draft -> submitted -> graded. Same-status saves (draft resave,
// resubmission) are allowed; moving backwards is not.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// SubmissionFile is a stored upload attached to a submission.
type SubmissionFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Submission is a user's answer to an assignment. Files accumulate across
// resubmissions; SubmittedAt is stamped once, on the first transition into
// submitted; Score and Feedback are written only by the grading path.
type Submission struct {
	ID           string           `json:"id"`
	AssignmentID string           `json:"assignmentId"`
	UserID       string           `json:"userId"`
	Status       SubmissionStatus `json:"status"`
	Note         string           `json:"note,omitempty"`
	Files        []SubmissionFile `json:"files"`
	Score        *int             `json:"score,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty"`
}
