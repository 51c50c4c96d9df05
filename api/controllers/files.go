package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	filesvc "github.com/shoplite/shoplite-backend/internal/files"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// ListFiles returns every stored file record.
func ListFiles(svc filesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

// SaveFile decodes a base64 upload and persists the binary plus its record.
func SaveFile(svc filesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveFileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := base64.StdEncoding.DecodeString(payload.Content)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid base64 content"))
			return
		}

		record, err := svc.Save(r.Context(), filesvc.SaveInput{
			Filename:    payload.Filename,
			Content:     content,
			ContentType: payload.ContentType,
			Metadata:    payload.Metadata,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, record)
	}
}

type saveFileRequest struct {
	Filename    string         `json:"filename" validate:"required"`
	Content     string         `json:"content_base64" validate:"required"`
	ContentType string         `json:"content_type"`
	Metadata    map[string]any `json:"metadata"`
}
