package utils

import (
	"context"
	"testing"
)

func TestGetExternalIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), ExternalIDCtxKey, "123456789012345678")

	externalID, ok := GetExternalIDFromContext(ctx)
	if !ok {
		t.Fatal("expected external id to be found")
	}
	if externalID != "123456789012345678" {
		t.Errorf("expected 123456789012345678, got %s", externalID)
	}
}

func TestGetExternalIDFromContext_Missing(t *testing.T) {
	_, ok := GetExternalIDFromContext(context.Background())
	if ok {
		t.Fatal("expected external id to be missing")
	}
}

func TestGetExternalIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ExternalIDCtxKey, int64(42))

	_, ok := GetExternalIDFromContext(ctx)
	if ok {
		t.Fatal("expected wrong-typed value to be rejected")
	}
}

func TestContextKey_String(t *testing.T) {
	if ExternalIDCtxKey.String() != "externalID" {
		t.Errorf("unexpected key string: %s", ExternalIDCtxKey.String())
	}
}
