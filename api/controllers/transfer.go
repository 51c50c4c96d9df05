package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	transfersvc "github.com/shoplite/shoplite-backend/internal/transfer"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// ExportData returns a snapshot of every document in one payload.
func ExportData(svc transfersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Export(r.Context()))
	}
}

// ImportData replaces documents from a snapshot payload. Unknown top-level
// keys are ignored; any malformed document aborts the whole import.
func ImportData(svc transfersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]json.RawMessage
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Import(r.Context(), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
