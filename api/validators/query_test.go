package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

func requestWithPathID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/things/"+id, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestPathID(t *testing.T) {
	id, err := PathID(requestWithPathID("42"), "id")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	_, err := PathID(requestWithPathID("abc"), "id")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	got, err := ParseQueryInt(req, "days", 30, 1, 365)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 30 {
		t.Fatalf("expected default 30, got %d", got)
	}
}

func TestParseQueryIntBounds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics?days=9000", nil)
	_, err := ParseQueryInt(req, "days", 30, 1, 365)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntNonNumeric(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics?days=soon", nil)
	_, err := ParseQueryInt(req, "days", 30, 1, 365)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt64PtrAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	got, err := ParseQueryInt64Ptr(req, "start")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestParseQueryInt64PtrPresent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders?start=1700000000", nil)
	got, err := ParseQueryInt64Ptr(req, "start")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got == nil || *got != 1700000000 {
		t.Fatalf("expected 1700000000, got %v", got)
	}
}
