package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeNotFound, "order not found")
	if err.Code() != CodeNotFound {
		t.Fatalf("expected not found code, got %s", err.Code())
	}
	if err.Message() != "order not found" {
		t.Fatalf("unexpected message %q", err.Message())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeInternal, cause, "persist order")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeValidation, nil, "bad input")
	if err.Code() != CodeValidation || err.Message() != "bad input" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := Wrap(CodeInternal, inner, "lookup failed")

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeInternal {
		t.Fatalf("expected outermost code, got %s", typed.Code())
	}
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	if typed := As(stdErrors.New("plain")); typed != nil {
		t.Fatalf("expected nil, got %v", typed)
	}
	if typed := As(nil); typed != nil {
		t.Fatalf("expected nil for nil error, got %v", typed)
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("MYSTERY"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", meta.HTTPStatus)
	}
}

func TestDumpWalksChain(t *testing.T) {
	inner := stdErrors.New("syscall failed")
	mid := Wrap(CodeInternal, inner, "write document")
	outer := Wrap(CodeInternal, mid, "persist order")

	dump := Dump(outer)
	if dump.TopMessage != outer.Error() {
		t.Fatalf("unexpected top message %q", dump.TopMessage)
	}
	if dump.Code != CodeInternal {
		t.Fatalf("unexpected code %q", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected chain with causes, got %v", dump.Chain)
	}
}
