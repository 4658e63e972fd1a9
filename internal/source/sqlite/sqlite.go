package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"movierec/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS movies (
	position    INTEGER PRIMARY KEY,
	title       TEXT NOT NULL UNIQUE,
	genre       TEXT NOT NULL,
	year        INTEGER NOT NULL,
	rating      REAL NOT NULL,
	description TEXT NOT NULL,
	poster      TEXT NOT NULL
)`

// Loader reads the catalog from a SQLite database.
type Loader struct {
	path string
}

// NewLoader creates a loader for the database file at path.
func NewLoader(path string) *Loader { return &Loader{path: path} }

// Name returns the identifier of this loader.
func (l *Loader) Name() string { return "sqlite" }

// Load returns the movies table ordered by position.
func (l *Loader) Load() ([]domain.Movie, error) {
	db, err := sqlx.Connect("sqlite3", l.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db %s: %w", l.path, err)
	}
	defer db.Close()

	var movies []domain.Movie
	err = db.Select(&movies, `SELECT title, genre, year, rating, description, poster FROM movies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	return movies, nil
}

// Seed creates the movies table at path and inserts movies in order,
// replacing any existing rows.
func Seed(path string, movies []domain.Movie) error {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open catalog db %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movies`); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}
	for i, m := range movies {
		_, err := tx.Exec(
			`INSERT INTO movies (position, title, genre, year, rating, description, poster) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, m.Title, m.Genre, m.Year, m.Rating, m.Description, m.Poster,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", m.Title, err)
		}
	}
	return tx.Commit()
}
