package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect captures the differences between the supported SQL backends.
type Dialect struct {
	// Name is the config.Storage.DBType value of the dialect.
	Name string
	// Goose is the dialect name understood by the migration provider.
	Goose goose.Dialect

	placeholder      sq.PlaceholderFormat
	tableExistsQuery string
	newClassifier    func() ErrorClassificator
}

var (
	// Postgres is the PostgreSQL dialect ($n placeholders).
	Postgres = Dialect{
		Name:             "postgres",
		Goose:            goose.DialectPostgres,
		placeholder:      sq.Dollar,
		tableExistsQuery: `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)`,
		newClassifier:    func() ErrorClassificator { return NewPostgresErrorClassifier() },
	}

	// SQLite is the SQLite dialect (? placeholders).
	SQLite = Dialect{
		Name:             "sqlite",
		Goose:            goose.DialectSQLite3,
		placeholder:      sq.Question,
		tableExistsQuery: `SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)`,
		newClassifier:    func() ErrorClassificator { return NewSQLiteErrorClassifier() },
	}
)

// Builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func (d Dialect) classifier() ErrorClassificator {
	if d.newClassifier == nil {
		return nil
	}
	return d.newClassifier()
}
