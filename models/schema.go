package models

import "fmt"

// SchemaStatus is the schema state of the store compared with the
// migrations compiled into the agent.
type SchemaStatus struct {
	// Versioned is false until the first migration created the version
	// table.
	Versioned bool
	// Version is the applied version; 0 while unversioned.
	Version int64
	// Target is the highest embedded migration version.
	Target int64
}

// Current reports whether the store is exactly at Target.
func (s SchemaStatus) Current() bool {
	return s.Versioned && s.Version == s.Target
}

func (s SchemaStatus) String() string {
	if !s.Versioned {
		return "unversioned"
	}
	return fmt.Sprintf("at version %d", s.Version)
}
