package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/internal/infrastructure/catalog"
	"github.com/eslsoft/atelier/pkg/listquery"
)

const defaultRecommendationLimit = 5

// ListPromptsQuery narrows the prompt collection. Type and IsPremium are
// prompt-specific dimensions layered on top of the shared filter.
type ListPromptsQuery struct {
	Filter    listquery.Filter
	Page      listquery.Page
	Type      string
	IsPremium *bool
}

// ListResourcesQuery narrows the resource collection.
type ListResourcesQuery struct {
	Filter    listquery.Filter
	Page      listquery.Page
	Type      string
	IsPremium *bool
}

// RecommendationQuery selects prompts related to course material.
type RecommendationQuery struct {
	CourseSection string
	CourseID      string
	Difficulty    string
	Limit         int
}

// Recommendation is a curated prompt list with a human-readable reason.
type Recommendation struct {
	Prompts              []entity.Prompt
	Reason               string
	RelatedCourseSection string
}

// ContentUsecase serves the static content collections: shared
// filter+paginate semantics for lists, ID lookup for single items, and
// prompt recommendations keyed off course material.
type ContentUsecase interface {
	ListCourses(ctx context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Course]
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	ListKnowledge(ctx context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.KnowledgeCard]
	GetKnowledge(ctx context.Context, id string) (*entity.KnowledgeCard, error)
	ListCases(ctx context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.CaseStudy]
	GetCase(ctx context.Context, id string) (*entity.CaseStudy, error)
	ListPrompts(ctx context.Context, query ListPromptsQuery) listquery.Result[entity.Prompt]
	GetPrompt(ctx context.Context, id string) (*entity.Prompt, error)
	ListWorkflows(ctx context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Workflow]
	GetWorkflow(ctx context.Context, id string) (*entity.Workflow, error)
	ListResources(ctx context.Context, query ListResourcesQuery) listquery.Result[entity.Resource]
	GetResource(ctx context.Context, id string) (*entity.Resource, error)
	RecommendPrompts(ctx context.Context, query RecommendationQuery) Recommendation
}

// NewContentUsecase serves content from the validated catalog.
func NewContentUsecase(cat *catalog.Catalog) ContentUsecase {
	return &contentUsecase{catalog: cat}
}

type contentUsecase struct {
	catalog *catalog.Catalog
}

func (u *contentUsecase) ListCourses(_ context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Course] {
	filtered := listquery.Apply(u.catalog.Courses, filter, func(c entity.Course) listquery.Fields {
		return listquery.Fields{
			Category:   c.Category,
			Difficulty: string(c.Difficulty),
			Tags:       c.Tags,
			SearchText: []string{c.Title, c.Description},
		}
	})
	return listquery.Paginate(filtered, page)
}

func (u *contentUsecase) GetCourse(_ context.Context, id string) (*entity.Course, error) {
	for i := range u.catalog.Courses {
		if u.catalog.Courses[i].ID == id {
			return &u.catalog.Courses[i], nil
		}
	}
	return nil, entity.ErrCourseNotFound
}

func (u *contentUsecase) ListKnowledge(_ context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.KnowledgeCard] {
	filtered := listquery.Apply(u.catalog.Knowledge, filter, func(k entity.KnowledgeCard) listquery.Fields {
		return listquery.Fields{
			Category:   k.Category,
			Difficulty: string(k.Difficulty),
			Tags:       k.Tags,
			SearchText: []string{k.Title, k.Summary},
		}
	})
	return listquery.Paginate(filtered, page)
}

func (u *contentUsecase) GetKnowledge(_ context.Context, id string) (*entity.KnowledgeCard, error) {
	for i := range u.catalog.Knowledge {
		if u.catalog.Knowledge[i].ID == id {
			return &u.catalog.Knowledge[i], nil
		}
	}
	return nil, entity.ErrKnowledgeNotFound
}

func (u *contentUsecase) ListCases(_ context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.CaseStudy] {
	filtered := listquery.Apply(u.catalog.Cases, filter, func(c entity.CaseStudy) listquery.Fields {
		return listquery.Fields{
			Category:   c.Category,
			Difficulty: string(c.Difficulty),
			Tags:       c.Tags,
			SearchText: []string{c.Title, c.Summary},
		}
	})
	return listquery.Paginate(filtered, page)
}

func (u *contentUsecase) GetCase(_ context.Context, id string) (*entity.CaseStudy, error) {
	for i := range u.catalog.Cases {
		if u.catalog.Cases[i].ID == id {
			return &u.catalog.Cases[i], nil
		}
	}
	return nil, entity.ErrCaseNotFound
}

func (u *contentUsecase) ListPrompts(_ context.Context, query ListPromptsQuery) listquery.Result[entity.Prompt] {
	pool := lo.Filter(u.catalog.Prompts, func(p entity.Prompt, _ int) bool {
		if query.Type != "" && p.Type != query.Type {
			return false
		}
		if query.IsPremium != nil && p.IsPremium != *query.IsPremium {
			return false
		}
		return true
	})
	filtered := listquery.Apply(pool, query.Filter, promptFields)
	return listquery.Paginate(filtered, query.Page)
}

func promptFields(p entity.Prompt) listquery.Fields {
	return listquery.Fields{
		Category:   p.Type,
		Difficulty: string(p.Difficulty),
		Tags:       p.Tags,
		SearchText: []string{p.Title, p.Description},
	}
}

func (u *contentUsecase) GetPrompt(_ context.Context, id string) (*entity.Prompt, error) {
	for i := range u.catalog.Prompts {
		if u.catalog.Prompts[i].ID == id {
			return &u.catalog.Prompts[i], nil
		}
	}
	return nil, entity.ErrPromptNotFound
}

func (u *contentUsecase) ListWorkflows(_ context.Context, filter listquery.Filter, page listquery.Page) listquery.Result[entity.Workflow] {
	filtered := listquery.Apply(u.catalog.Workflows, filter, func(w entity.Workflow) listquery.Fields {
		return listquery.Fields{
			Category:   w.Category,
			Difficulty: string(w.Difficulty),
			Tags:       w.Tags,
			SearchText: []string{w.Title, w.Description},
		}
	})
	return listquery.Paginate(filtered, page)
}

func (u *contentUsecase) GetWorkflow(_ context.Context, id string) (*entity.Workflow, error) {
	for i := range u.catalog.Workflows {
		if u.catalog.Workflows[i].ID == id {
			return &u.catalog.Workflows[i], nil
		}
	}
	return nil, entity.ErrWorkflowNotFound
}

func (u *contentUsecase) ListResources(_ context.Context, query ListResourcesQuery) listquery.Result[entity.Resource] {
	pool := lo.Filter(u.catalog.Resources, func(r entity.Resource, _ int) bool {
		if query.Type != "" && r.Type != query.Type {
			return false
		}
		if query.IsPremium != nil && r.IsPremium != *query.IsPremium {
			return false
		}
		return true
	})
	filtered := listquery.Apply(pool, query.Filter, func(r entity.Resource) listquery.Fields {
		return listquery.Fields{
			Category:   r.Category,
			Difficulty: string(r.Difficulty),
			Tags:       r.Tags,
			SearchText: []string{r.Title, r.Description},
		}
	})
	return listquery.Paginate(filtered, query.Page)
}

func (u *contentUsecase) GetResource(_ context.Context, id string) (*entity.Resource, error) {
	for i := range u.catalog.Resources {
		if u.catalog.Resources[i].ID == id {
			return &u.catalog.Resources[i], nil
		}
	}
	return nil, entity.ErrResourceNotFound
}

// RecommendPrompts picks prompts tied to a course section when one is
// given, falling back to course-wide and then general recommendations.
// The reason string is part of the API contract; clients display it
// verbatim.
func (u *contentUsecase) RecommendPrompts(_ context.Context, query RecommendationQuery) Recommendation {
	rec := Recommendation{Reason: "General recommendations"}

	pool := u.catalog.Prompts
	switch {
	case strings.TrimSpace(query.CourseSection) != "":
		section := strings.TrimSpace(query.CourseSection)
		pool = lo.Filter(pool, func(p entity.Prompt, _ int) bool {
			return p.CourseSection == section
		})
		rec.Reason = fmt.Sprintf("Recommendations based on course section: %s", section)
		rec.RelatedCourseSection = section
	case strings.TrimSpace(query.CourseID) != "":
		courseID := strings.TrimSpace(query.CourseID)
		pool = lo.Filter(pool, func(p entity.Prompt, _ int) bool {
			return p.CourseID == courseID
		})
		rec.Reason = fmt.Sprintf("Recommendations based on course: %s", courseID)
	}

	if d := entity.ParseDifficulty(query.Difficulty); d.Valid() {
		pool = lo.Filter(pool, func(p entity.Prompt, _ int) bool {
			return p.Difficulty == d
		})
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if len(pool) > limit {
		pool = pool[:limit]
	}
	rec.Prompts = pool
	return rec
}
