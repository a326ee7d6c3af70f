package sqlite

import "database/sql"

// schema mirrors the document layout {_id, text, isMarked}.
// seq keeps insertion order stable for listing; is_marked is NULL when the
// flag was never supplied.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL CHECK (text <> ''),
    is_marked INTEGER
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
