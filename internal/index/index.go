// Package index persists drained export artifacts into a SQLite
// database so external tooling and incremental builds can query a
// module's exports without recompiling it.
package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cadenza-lang/cadenza/internal/defs"
	"github.com/cadenza-lang/cadenza/internal/modules"
)

const schema = `
CREATE TABLE IF NOT EXISTS exports (
	session    TEXT    NOT NULL,
	module     TEXT    NOT NULL,
	file       TEXT    NOT NULL,
	name       TEXT    NOT NULL,
	arity      INTEGER NOT NULL,
	visibility TEXT    NOT NULL,
	line       INTEGER NOT NULL,
	clauses    INTEGER NOT NULL,
	PRIMARY KEY (module, name, arity)
);
CREATE INDEX IF NOT EXISTS exports_module ON exports (module);
`

// Index is a handle on the export database.
type Index struct {
	db *sql.DB
}

// Open opens (creating if needed) the export index at path.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index %s: %w", path, err)
	}
	return &Index{db: db}, nil
}

func (ix *Index) Close() error {
	return ix.db.Close()
}

// Record replaces the module's rows with the artifact's entries. Every
// registered signature is recorded, privates included, so tooling can
// distinguish "not exported" from "not defined".
func (ix *Index) Record(a *modules.Artifact) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM exports WHERE module = ?`, a.Module); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO exports (session, module, file, name, arity, visibility, line, clauses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range a.Entries {
		sig := defs.Signature{Name: e.Name, Arity: e.Arity}
		vis := a.VisibilityOf(sig)
		if _, err := stmt.Exec(a.Session, a.Module, a.File, e.Name, e.Arity, vis.String(), e.Line, len(e.Clauses)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Row is one indexed signature.
type Row struct {
	Session    string
	Module     string
	File       string
	Name       string
	Arity      int
	Visibility string
	Line       int
	Clauses    int
}

// Exports lists the indexed signatures of one module, or of every
// module when the name is empty. Rows come back in declaration order
// within a module.
func (ix *Index) Exports(module string) ([]Row, error) {
	query := `SELECT session, module, file, name, arity, visibility, line, clauses
		FROM exports ORDER BY module, line, name, arity`
	args := []interface{}{}
	if module != "" {
		query = `SELECT session, module, file, name, arity, visibility, line, clauses
			FROM exports WHERE module = ? ORDER BY line, name, arity`
		args = append(args, module)
	}

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Session, &r.Module, &r.File, &r.Name, &r.Arity, &r.Visibility, &r.Line, &r.Clauses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Modules lists the distinct module names present in the index.
func (ix *Index) Modules() ([]string, error) {
	rows, err := ix.db.Query(`SELECT DISTINCT module FROM exports ORDER BY module`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
