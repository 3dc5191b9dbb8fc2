package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const projectsSchema = `
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		budget REAL NOT NULL DEFAULT 0,
		spent REAL NOT NULL DEFAULT 0,
		progress INTEGER NOT NULL DEFAULT 0
	);
`

const sprintsSchema = `
	CREATE TABLE IF NOT EXISTS sprints (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		status TEXT NOT NULL,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		story_points_committed INTEGER NOT NULL DEFAULT 0,
		story_points_completed INTEGER NOT NULL DEFAULT 0,
		velocity REAL NOT NULL DEFAULT 0
	);
`

const tasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		sprint_id TEXT,
		status TEXT NOT NULL,
		story_points INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

const timeEntriesSchema = `
	CREATE TABLE IF NOT EXISTS time_entries (
		id TEXT PRIMARY KEY,
		task_id TEXT,
		project_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		hours REAL NOT NULL DEFAULT 0
	);
`

const transactionsSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		project_id TEXT,
		client_id TEXT,
		category TEXT,
		date TIMESTAMP NOT NULL
	);
`

const invoicesSchema = `
	CREATE TABLE IF NOT EXISTS invoices (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		project_id TEXT,
		amount REAL NOT NULL DEFAULT 0,
		tax REAL NOT NULL DEFAULT 0,
		total REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL
	);
`

const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
`

var bootQueries = []string{
	projectsSchema,
	sprintsSchema,
	tasksSchema,
	timeEntriesSchema,
	transactionsSchema,
	invoicesSchema,
	usersSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the SQLite database at settings.DbPath (":memory:" for an
// in-memory instance) and creates the schema if it does not exist.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return db, nil
}
