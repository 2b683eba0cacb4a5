package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Fatalf("expected distinct run ids, got %s twice", a)
	}

	id, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("run id is not a uuid: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}
