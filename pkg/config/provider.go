package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetStorageConfig() (*StorageData, error)
	GetRESTServerConfig() (*RESTServerData, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Storage    StorageData     `json:"storage"`
	RESTServer *RESTServerData `json:"rest,omitempty"`
}

// StorageData holds the configuration for the well database
type StorageData struct {
	Postgres *PostgresData `json:"postgres,omitempty"`
}

// PostgresData holds the PostgreSQL connection configuration
type PostgresData struct {
	ConnectionString string `json:"connection_string"`
}

// RESTServerData holds the REST server configuration
type RESTServerData struct {
	Cert              string `json:"cert,omitempty"`
	Key               string `json:"key,omitempty"`
	HTTPPort          int    `json:"http_port,omitempty"`
	DefaultListenAddr string `json:"default_listen_addr,omitempty"`
}
