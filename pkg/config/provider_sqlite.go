package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// ensureSchema creates the configuration tables if they do not exist yet
func ensureSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS storage_config (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			pg_connection_string TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS rest_config (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			cert TEXT NOT NULL DEFAULT '',
			key TEXT NOT NULL DEFAULT '',
			http_port INTEGER NOT NULL DEFAULT 0,
			listen_addr TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create config schema: %w", err)
		}
	}
	return nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	storage, err := s.GetStorageConfig()
	if err != nil {
		return nil, err
	}
	config.Storage = *storage

	rest, err := s.GetRESTServerConfig()
	if err != nil {
		return nil, err
	}
	config.RESTServer = rest

	return config, nil
}

// GetStorageConfig loads the storage section from the database
func (s *SQLiteProvider) GetStorageConfig() (*StorageData, error) {
	storage := &StorageData{}

	var connStr string
	err := s.db.QueryRow(`SELECT pg_connection_string FROM storage_config WHERE id = 1`).Scan(&connStr)
	switch {
	case err == sql.ErrNoRows:
		// No storage row configured; leave the section empty
	case err != nil:
		return nil, fmt.Errorf("failed to query storage config: %w", err)
	case connStr != "":
		storage.Postgres = &PostgresData{ConnectionString: connStr}
	}

	return storage, nil
}

// GetRESTServerConfig loads the REST server section from the database.
// Returns nil when no REST server row is configured.
func (s *SQLiteProvider) GetRESTServerConfig() (*RESTServerData, error) {
	rest := &RESTServerData{}

	err := s.db.QueryRow(
		`SELECT cert, key, http_port, listen_addr FROM rest_config WHERE id = 1`,
	).Scan(&rest.Cert, &rest.Key, &rest.HTTPPort, &rest.DefaultListenAddr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rest config: %w", err)
	}

	return rest, nil
}

// SetStorageConfig writes the storage section to the database
func (s *SQLiteProvider) SetStorageConfig(storage *StorageData) error {
	connStr := ""
	if storage.Postgres != nil {
		connStr = storage.Postgres.ConnectionString
	}
	_, err := s.db.Exec(
		`INSERT INTO storage_config (id, pg_connection_string) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET pg_connection_string = excluded.pg_connection_string`,
		connStr,
	)
	if err != nil {
		return fmt.Errorf("failed to write storage config: %w", err)
	}
	return nil
}

// SetRESTServerConfig writes the REST server section to the database
func (s *SQLiteProvider) SetRESTServerConfig(rest *RESTServerData) error {
	_, err := s.db.Exec(
		`INSERT INTO rest_config (id, cert, key, http_port, listen_addr) VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			cert = excluded.cert,
			key = excluded.key,
			http_port = excluded.http_port,
			listen_addr = excluded.listen_addr`,
		rest.Cert, rest.Key, rest.HTTPPort, rest.DefaultListenAddr,
	)
	if err != nil {
		return fmt.Errorf("failed to write rest config: %w", err)
	}
	return nil
}

// IsReadOnly returns false: SQLite configs can be updated in place
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the underlying database handle
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
