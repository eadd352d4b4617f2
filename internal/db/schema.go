package db

// Table names
const (
	tableSessions = "sessions"
)

// sessionColumns lists the sessions columns in scan order
var sessionColumns = []string{
	"id",
	"parent_id",
	"origin",
	"seed",
	"draws",
	"locale",
	"locale_fallback",
	"checksum",
	"created_at",
	"updated_at",
}

// BuildSessionsTableSQL returns the CREATE TABLE statement for sessions.
// The seed column holds the JSON form of random.Seed.
func BuildSessionsTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS ` + tableSessions + ` (
		id VARCHAR PRIMARY KEY,
		parent_id VARCHAR NOT NULL DEFAULT '',
		origin VARCHAR NOT NULL,
		seed VARCHAR NOT NULL,
		draws UBIGINT NOT NULL DEFAULT 0,
		locale VARCHAR NOT NULL,
		locale_fallback VARCHAR NOT NULL,
		checksum VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
}

// BuildIndexesSQL returns the index statements for the sessions table
func BuildIndexesSQL() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_parent_id ON ` + tableSessions + ` (parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON ` + tableSessions + ` (created_at)`,
	}
}
