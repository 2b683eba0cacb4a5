package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Scope narrows a dataset to one client and, for project datasets, one
// project. Either field may be empty.
type Scope struct {
	ClientID  string
	ProjectID string
}

// CheckpointKey identifies one stored sync version.
type CheckpointKey struct {
	DatasetID string
	ClientID  string
	ProjectID string
}

// Key returns the checkpoint key of datasetID within s.
func (s Scope) Key(datasetID string) CheckpointKey {
	return CheckpointKey{DatasetID: datasetID, ClientID: s.ClientID, ProjectID: s.ProjectID}
}

// DeltaPage is one decoded page of a dataset delta.
//
// FinalVersion is only reported on the last page (MoreUpdates false), and
// some datasets omit it entirely when nothing changed.
type DeltaPage[T any] struct {
	Items        []T
	MoreUpdates  bool
	FinalVersion *uint64
}

// ErrMissingItems is returned by DecodeDeltaPage when the items field is
// absent or null.
var ErrMissingItems = errors.New("delta page has no items field")

// DecodeDeltaPage decodes one delta response whose items are carried under
// itemsField, e.g. {"clientUpdates": [...], "moreUpdates": false,
// "finalVersion": 11}.
func DecodeDeltaPage[T any](body []byte, itemsField string) (DeltaPage[T], error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return DeltaPage[T]{}, err
	}

	items, ok := raw[itemsField]
	if !ok || string(items) == "null" {
		return DeltaPage[T]{}, fmt.Errorf("%w: %q", ErrMissingItems, itemsField)
	}

	var page DeltaPage[T]
	if err := json.Unmarshal(items, &page.Items); err != nil {
		return DeltaPage[T]{}, fmt.Errorf("decoding %s: %w", itemsField, err)
	}
	if more, ok := raw["moreUpdates"]; ok {
		if err := json.Unmarshal(more, &page.MoreUpdates); err != nil {
			return DeltaPage[T]{}, fmt.Errorf("decoding moreUpdates: %w", err)
		}
	}
	if final, ok := raw["finalVersion"]; ok && string(final) != "null" {
		var v uint64
		if err := json.Unmarshal(final, &v); err != nil {
			return DeltaPage[T]{}, fmt.Errorf("decoding finalVersion: %w", err)
		}
		page.FinalVersion = &v
	}

	return page, nil
}
