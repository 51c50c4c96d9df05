package controllers

import (
	"net/http"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	coursesvc "github.com/shoplite/shoplite-backend/internal/courses"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// ListChapters returns chapters ordered by index, optionally scoped to one
// course via ?course_id.
func ListChapters(svc coursesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := validators.ParseQueryInt64Ptr(r, "course_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.ListChapters(r.Context(), courseID))
	}
}

// AddChapter appends a chapter to a course. Without an explicit order_index
// the chapter lands after the current last sibling.
func AddChapter(svc coursesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createChapterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		chapter, err := svc.AddChapter(r.Context(), coursesvc.ChapterCreateInput{
			CourseID:   payload.CourseID,
			Title:      payload.Title,
			Content:    payload.Content,
			OrderIndex: payload.OrderIndex,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, chapter)
	}
}

// UpdateChapter applies a partial update to a chapter.
func UpdateChapter(svc coursesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateChapterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		chapter, err := svc.UpdateChapter(r.Context(), id, coursesvc.ChapterUpdateInput{
			Title:      payload.Title,
			Content:    payload.Content,
			OrderIndex: payload.OrderIndex,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, chapter)
	}
}

// DeleteChapter removes one chapter.
func DeleteChapter(svc coursesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteChapter(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type createChapterRequest struct {
	CourseID   int64  `json:"course_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	OrderIndex *int   `json:"order_index,omitempty"`
}

type updateChapterRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}
