package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCode(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(CodeValidation)
	if meta.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 for validation, got %d", meta.HTTPStatus)
	}
	if !meta.DetailsAllowed {
		t.Fatal("validation errors should allow details")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("boom")
	err := Wrap(CodeDependency, cause, "load producto")

	if err.Unwrap() != cause {
		t.Fatal("expected cause to be preserved")
	}
	if typed := As(fmt.Errorf("outer: %w", err)); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected typed error through wrapping, got %v", typed)
	}
}

func TestWrapNilCause(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeConflict, nil, "stock insuficiente")
	if err.Unwrap() != nil {
		t.Fatal("expected nil cause")
	}
	if err.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestDumpCollectsChain(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeDependency, fmt.Errorf("inner"), "outer")
	dump := Dump(err)

	if dump.Code != CodeDependency {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(dump.Chain))
	}
}
