package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOperatorIDCtxKey(t *testing.T) {
	if OperatorIDCtxKey.String() != "operatorID" {
		t.Errorf("expected 'operatorID', got '%s'", OperatorIDCtxKey.String())
	}
}

func TestGetOperatorIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorIDCtxKey, "op-42")

	operatorID, ok := GetOperatorIDFromContext(ctx)
	if !ok {
		t.Fatal("expected operator ID to be present")
	}
	if operatorID != "op-42" {
		t.Errorf("expected 'op-42', got '%s'", operatorID)
	}
}

func TestGetOperatorIDFromContext_Missing(t *testing.T) {
	if _, ok := GetOperatorIDFromContext(context.Background()); ok {
		t.Error("expected missing operator ID")
	}
}

func TestGetOperatorIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorIDCtxKey, 42)

	if _, ok := GetOperatorIDFromContext(ctx); ok {
		t.Error("expected type mismatch to report absence")
	}
}
