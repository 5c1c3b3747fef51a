package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "profilestore.load",
		Kind: KindInvalidConfig,
		Path: "profiles/neapolitan.json",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=profiles/neapolitan.json") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{
		Op:   "params.validate",
		Kind: KindInvalidParams,
		Err:  ErrInvalidParams,
	}

	if !IsKind(err, KindInvalidParams) {
		t.Fatalf("expected IsKind to match op error")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), KindInvalidParams) {
		t.Fatalf("expected IsKind to reject a plain error")
	}
}

func TestOpErrorNilReceiver(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	err := fmt.Errorf("loading: %w", &OpError{
		Op:   "profilestore.load",
		Kind: KindNotFound,
		Err:  errors.New("open profiles/x.json: no such file"),
	})

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is to match ErrNotFound")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected errors.Is to reject another kind's sentinel")
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected KindOf %s, got %q", KindNotFound, KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for a plain error")
	}
}
