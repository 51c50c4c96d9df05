package courses

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Service manages courses and their chapters.
type Service interface {
	ListCourses(ctx context.Context) []Course
	CreateCourse(ctx context.Context, title, description string) (Course, error)
	UpdateCourse(ctx context.Context, id int64, input CourseInput) (Course, error)
	// DeleteCourse removes the course and every chapter referencing it.
	DeleteCourse(ctx context.Context, id int64) error

	ListChapters(ctx context.Context, courseID *int64) []Chapter
	AddChapter(ctx context.Context, input ChapterCreateInput) (Chapter, error)
	UpdateChapter(ctx context.Context, id int64, input ChapterUpdateInput) (Chapter, error)
	DeleteChapter(ctx context.Context, id int64) error
}

type service struct {
	store    *docstore.Store
	courses  *docstore.Collection[Course]
	chapters *docstore.Collection[Chapter]
	now      func() int64
}

// NewService builds a course service backed by the given store.
func NewService(store *docstore.Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{
		store:    store,
		courses:  docstore.NewCollection[Course](store, docstore.DocCourses),
		chapters: docstore.NewCollection[Chapter](store, docstore.DocChapters),
		now:      func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) ListCourses(ctx context.Context) []Course {
	return s.courses.List(ctx)
}

func (s *service) CreateCourse(ctx context.Context, title, description string) (Course, error) {
	ts := s.now()
	course, err := s.courses.Insert(ctx, func(id int64) Course {
		return Course{
			ID:          id,
			Title:       title,
			Description: description,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	})
	if err != nil {
		return Course{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist course")
	}
	return course, nil
}

func (s *service) UpdateCourse(ctx context.Context, id int64, input CourseInput) (Course, error) {
	course, found, err := s.courses.Update(ctx, id, func(c *Course) {
		if input.Title != nil {
			c.Title = *input.Title
		}
		if input.Description != nil {
			c.Description = *input.Description
		}
		c.UpdatedAt = s.now()
	})
	if err != nil {
		return Course{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist course")
	}
	if !found {
		return Course{}, pkgerrors.New(pkgerrors.CodeNotFound, "course not found")
	}
	return course, nil
}

func (s *service) DeleteCourse(ctx context.Context, id int64) error {
	found := false
	err := docstore.MutateDocs2(ctx, s.store, docstore.DocCourses, docstore.DocChapters,
		func(courses []Course, chapters []Chapter) ([]Course, []Chapter, error) {
			keptCourses := make([]Course, 0, len(courses))
			for _, course := range courses {
				if course.ID == id {
					found = true
					continue
				}
				keptCourses = append(keptCourses, course)
			}
			if !found {
				return nil, nil, docstore.ErrUnchanged
			}
			keptChapters := make([]Chapter, 0, len(chapters))
			for _, chapter := range chapters {
				if chapter.CourseID == id {
					continue
				}
				keptChapters = append(keptChapters, chapter)
			}
			return keptCourses, keptChapters, nil
		})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist course cascade")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "course not found")
	}
	return nil
}

func (s *service) ListChapters(ctx context.Context, courseID *int64) []Chapter {
	all := s.chapters.List(ctx)
	if courseID == nil {
		return all
	}
	filtered := make([]Chapter, 0, len(all))
	for _, chapter := range all {
		if chapter.CourseID == *courseID {
			filtered = append(filtered, chapter)
		}
	}
	return filtered
}

func (s *service) AddChapter(ctx context.Context, input ChapterCreateInput) (Chapter, error) {
	ts := s.now()
	var created Chapter
	_, err := s.chapters.Mutate(ctx, func(chapters []Chapter) ([]Chapter, error) {
		orderIndex := 0
		if input.OrderIndex != nil {
			orderIndex = *input.OrderIndex
		} else {
			for _, sibling := range chapters {
				if sibling.CourseID == input.CourseID && sibling.OrderIndex >= orderIndex {
					orderIndex = sibling.OrderIndex
				}
			}
			orderIndex++
		}

		ids := make([]int64, 0, len(chapters))
		for _, chapter := range chapters {
			ids = append(ids, chapter.ID)
		}
		created = Chapter{
			ID:         docstore.MaxPlusOne{}.Next(ids),
			CourseID:   input.CourseID,
			Title:      input.Title,
			Content:    input.Content,
			OrderIndex: orderIndex,
			CreatedAt:  ts,
			UpdatedAt:  ts,
		}
		return append(chapters, created), nil
	})
	if err != nil {
		return Chapter{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist chapter")
	}
	return created, nil
}

func (s *service) UpdateChapter(ctx context.Context, id int64, input ChapterUpdateInput) (Chapter, error) {
	chapter, found, err := s.chapters.Update(ctx, id, func(c *Chapter) {
		if input.Title != nil {
			c.Title = *input.Title
		}
		if input.Content != nil {
			c.Content = *input.Content
		}
		if input.OrderIndex != nil {
			c.OrderIndex = *input.OrderIndex
		}
		c.UpdatedAt = s.now()
	})
	if err != nil {
		return Chapter{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist chapter")
	}
	if !found {
		return Chapter{}, pkgerrors.New(pkgerrors.CodeNotFound, "chapter not found")
	}
	return chapter, nil
}

func (s *service) DeleteChapter(ctx context.Context, id int64) error {
	removed, err := s.chapters.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist chapters")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "chapter not found")
	}
	return nil
}
