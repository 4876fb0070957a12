// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/vaultchef/pkg/types"
)

const dbFile = "listing.db"

// Store caches recipe frontmatter summaries in a SQLite database keyed by
// path and modification time, so a listing only re-reads notes that
// changed since the last run.
type Store struct {
	db *sql.DB
}

// Open creates or opens the listing index at cacheDir/listing.db.
func Open(cacheDir string) (*Store, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	path := filepath.Join(cacheDir, dbFile)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening listing index: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS recipes (
		path TEXT PRIMARY KEY,
		mtime_ns INTEGER NOT NULL,
		has_frontmatter INTEGER NOT NULL,
		recipe_id TEXT,
		title TEXT,
		category TEXT,
		tags TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// List walks recipesDir and returns the filtered summaries, serving
// unchanged notes from the index and re-parsing the rest. Rows for deleted
// notes are pruned.
func (s *Store) List(recipesDir string, filter Filter) ([]types.RecipeSummary, error) {
	paths, err := RecipePaths(recipesDir)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var recipes []types.RecipeSummary
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mtime := info.ModTime().UnixNano()

		rec, hasFrontmatter, hit, err := cachedSummary(tx, path, mtime)
		if err != nil {
			return nil, err
		}
		if !hit {
			rec, hasFrontmatter = summarize(path)
			if !hasFrontmatter {
				// Remember the miss so the file is not re-parsed until
				// it changes.
				rec = types.RecipeSummary{Path: path}
			}
			if err := upsertSummary(tx, rec, mtime, hasFrontmatter); err != nil {
				return nil, err
			}
		}
		if !hasFrontmatter {
			continue
		}
		if filter.matches(rec) {
			recipes = append(recipes, rec)
		}
	}

	if err := pruneMissing(tx, paths); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing listing index: %w", err)
	}
	return recipes, nil
}

func cachedSummary(tx *sql.Tx, path string, mtime int64) (types.RecipeSummary, bool, bool, error) {
	var rec types.RecipeSummary
	var hasFrontmatter bool
	var tagsJSON string
	err := tx.QueryRow(
		`SELECT has_frontmatter, recipe_id, title, category, tags
		 FROM recipes WHERE path = ? AND mtime_ns = ?`,
		path, mtime,
	).Scan(&hasFrontmatter, &rec.RecipeID, &rec.Title, &rec.Category, &tagsJSON)
	if err == sql.ErrNoRows {
		return types.RecipeSummary{}, false, false, nil
	}
	if err != nil {
		return types.RecipeSummary{}, false, false, fmt.Errorf("querying listing index: %w", err)
	}

	rec.Path = path
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil {
			return types.RecipeSummary{}, false, false, nil
		}
	}
	return rec, hasFrontmatter, true, nil
}

func upsertSummary(tx *sql.Tx, rec types.RecipeSummary, mtime int64, hasFrontmatter bool) error {
	tagsJSON := ""
	if hasFrontmatter && rec.Tags != nil {
		raw, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("encoding tags: %w", err)
		}
		tagsJSON = string(raw)
	}

	_, err := tx.Exec(
		`INSERT INTO recipes (path, mtime_ns, has_frontmatter, recipe_id, title, category, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   mtime_ns = excluded.mtime_ns,
		   has_frontmatter = excluded.has_frontmatter,
		   recipe_id = excluded.recipe_id,
		   title = excluded.title,
		   category = excluded.category,
		   tags = excluded.tags`,
		rec.Path, mtime, hasFrontmatter, rec.RecipeID, rec.Title, rec.Category, tagsJSON,
	)
	if err != nil {
		return fmt.Errorf("upserting recipe %s: %w", rec.Path, err)
	}
	return nil
}

func pruneMissing(tx *sql.Tx, paths []string) error {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		seen[p] = struct{}{}
	}

	rows, err := tx.Query(`SELECT path FROM recipes`)
	if err != nil {
		return fmt.Errorf("listing indexed paths: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return fmt.Errorf("scanning indexed path: %w", err)
		}
		if _, ok := seen[path]; !ok {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating indexed paths: %w", err)
	}

	for _, path := range stale {
		if _, err := tx.Exec(`DELETE FROM recipes WHERE path = ?`, path); err != nil {
			return fmt.Errorf("pruning %s: %w", path, err)
		}
	}
	return nil
}
