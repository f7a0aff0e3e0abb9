package entity

// CourseSection is a single teachable unit inside a course.
type CourseSection struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Summary  string `json:"summary"`
	Duration int    `json:"duration"`
}

// Course is a staged learning track built from ordered sections.
type Course struct {
	ID          string          `json:"id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	Difficulty  Difficulty      `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags        []string        `json:"tags"`
	Sections    []CourseSection `json:"sections" validate:"dive"`
	Cover       string          `json:"cover,omitempty"`
}

// KnowledgeCard is a bite-sized design concept.
type KnowledgeCard struct {
	ID         string     `json:"id" validate:"required"`
	Title      string     `json:"title" validate:"required"`
	Summary    string     `json:"summary"`
	Category   string     `json:"category" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags       []string   `json:"tags"`
	Content    string     `json:"content"`
}

// CaseStudy walks through a real project from brief to outcome.
type CaseStudy struct {
	ID         string     `json:"id" validate:"required"`
	Title      string     `json:"title" validate:"required"`
	Summary    string     `json:"summary"`
	Category   string     `json:"category" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags       []string   `json:"tags"`
	Client     string     `json:"client,omitempty"`
	Outcome    string     `json:"outcome,omitempty"`
}

// Prompt is a reusable AI prompt tied to course material.
type Prompt struct {
	ID            string     `json:"id" validate:"required"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	Type          string     `json:"type" validate:"required"`
	Difficulty    Difficulty `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags          []string   `json:"tags"`
	Content       string     `json:"content" validate:"required"`
	CourseID      string     `json:"courseId,omitempty"`
	CourseSection string     `json:"courseSection,omitempty"`
	IsPremium     bool       `json:"isPremium"`
}

// WorkflowStep is one stage in a documented working method.
type WorkflowStep struct {
	Order       int    `json:"order" validate:"min=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// Workflow documents a repeatable design process.
type Workflow struct {
	ID          string         `json:"id" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" validate:"required"`
	Difficulty  Difficulty     `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags        []string       `json:"tags"`
	Steps       []WorkflowStep `json:"steps" validate:"dive"`
}

// Resource points at an external tool, reading or asset pack.
type Resource struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags        []string   `json:"tags"`
	URL         string     `json:"url" validate:"required,url"`
	IsPremium   bool       `json:"isPremium"`
}

// Assignment is a graded exercise attached to course material.
type Assignment struct {
	ID           string     `json:"id" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	CourseID     string     `json:"courseId,omitempty"`
	Category     string     `json:"category" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=base advance stretch"`
	Tags         []string   `json:"tags"`
	Deliverables []string   `json:"deliverables"`
	DueDays      int        `json:"dueDays,omitempty"`
}
