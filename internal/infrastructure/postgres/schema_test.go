package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The repositories and the migration must agree on column names; a drift
// only surfaces at runtime as an undefined-column error. These tests pin
// every column the repositories reference to the CREATE TABLE statements.

const migrationPath = "../../../db/migrations/000001_init.up.sql"

func tableDDL(t *testing.T, table string) string {
	t.Helper()
	sql, err := os.ReadFile(migrationPath)
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	m := re.FindSubmatch(sql)
	if m == nil {
		t.Fatalf("migration has no CREATE TABLE for %q", table)
	}
	return string(m[1])
}

func columnsOf(list string) []string {
	var out []string
	for _, col := range strings.Split(list, ",") {
		col = strings.TrimSpace(col)
		// Strip scan casts like amount::text.
		if i := strings.Index(col, "::"); i >= 0 {
			col = col[:i]
		}
		if col != "" {
			out = append(out, col)
		}
	}
	return out
}

func assertColumns(t *testing.T, table, list string) {
	t.Helper()
	ddl := tableDDL(t, table)
	for _, col := range columnsOf(list) {
		// Column definitions start at a line head after indentation.
		re := regexp.MustCompile(`(?m)^\s*` + col + `\s`)
		if !re.MatchString(ddl) {
			t.Errorf("table %s has no column %q referenced by the repository", table, col)
		}
	}
}

func TestUserColumnsMatchMigration(t *testing.T) {
	assertColumns(t, "users", userColumns)
}

func TestProfileColumnsMatchMigration(t *testing.T) {
	assertColumns(t, "profile", profileColumns)
}

func TestLedgerColumnsMatchMigration(t *testing.T) {
	const entryColumns = "id, profile_id, date, description, amount::text, type, created_at"
	for _, table := range []string{"income", "expenses"} {
		assertColumns(t, table, entryColumns)
	}
}
