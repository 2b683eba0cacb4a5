package store

// Storages groups the repositories built on one [DB].
type Storages struct {
	Checkpoints CheckpointRepository
	Apply       ApplyRepository
	Schema      SchemaRepository
}

// NewStorages builds every repository on db. The schema repository needs
// the embedded migrations and fails if they cannot be loaded.
func NewStorages(db *DB) (*Storages, error) {
	schema, err := NewSchemaRepository(db, db.logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Checkpoints: NewCheckpointRepository(db, db.logger),
		Apply:       NewApplyRepository(db, db.logger),
		Schema:      schema,
	}, nil
}
