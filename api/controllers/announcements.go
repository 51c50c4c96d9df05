package controllers

import (
	"net/http"
	"strings"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	postsvc "github.com/shoplite/shoplite-backend/internal/announcements"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// ListPosts returns announcements and FAQ entries, optionally filtered by
// ?type.
func ListPosts(svc postsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter *enums.PostType
		if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
			postType, err := enums.ParsePostType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type"))
				return
			}
			filter = &postType
		}
		responses.WriteSuccess(w, svc.List(r.Context(), filter))
	}
}

// CreatePost adds a new announcement or FAQ entry.
func CreatePost(svc postsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createPostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		postType := enums.PostTypeAnnouncement
		if raw := strings.TrimSpace(payload.Type); raw != "" {
			parsed, err := enums.ParsePostType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type"))
				return
			}
			postType = parsed
		}

		post, err := svc.Create(r.Context(), payload.Title, payload.Content, postType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, post)
	}
}

// UpdatePost applies a partial update to a post.
func UpdatePost(svc postsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := postsvc.UpdateInput{Title: payload.Title, Content: payload.Content}
		if payload.Type != nil {
			postType, err := enums.ParsePostType(strings.TrimSpace(*payload.Type))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type"))
				return
			}
			input.Type = &postType
		}

		post, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, post)
	}
}

// DeletePost removes a post.
func DeletePost(svc postsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type createPostRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Type    *string `json:"type,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
