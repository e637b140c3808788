package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_indexes.sql", "CREATE INDEX idx ON t (a);")
	writeFile(t, dir, "001_core.sql", "CREATE TABLE t (a INT);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations() error: %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[1].Version != 2 {
		t.Errorf("migrations out of order: %d, %d", migrations[0].Version, migrations[1].Version)
	}
	if migrations[0].SQL != "CREATE TABLE t (a INT);" {
		t.Errorf("unexpected SQL content: %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_SkipsNonVersioned(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001_core.sql", "CREATE TABLE t (a INT);")
	writeFile(t, dir, "README.md", "not a migration")
	writeFile(t, dir, "notes.sql", "no version prefix")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations() error: %v", err)
	}
	if len(migrations) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(migrations))
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
