package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Storage struct {
			Postgres *struct {
				ConnectionString string `yaml:"connection_string"`
			} `yaml:"postgres,omitempty"`
		} `yaml:"storage"`
		REST *struct {
			Cert       string `yaml:"cert,omitempty"`
			Key        string `yaml:"key,omitempty"`
			Port       int    `yaml:"http_port,omitempty"`
			ListenAddr string `yaml:"listen_addr,omitempty"`
		} `yaml:"rest,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{}

	if yamlConfig.Storage.Postgres != nil {
		config.Storage.Postgres = &PostgresData{
			ConnectionString: yamlConfig.Storage.Postgres.ConnectionString,
		}
	}

	if yamlConfig.REST != nil {
		config.RESTServer = &RESTServerData{
			Cert:              yamlConfig.REST.Cert,
			Key:               yamlConfig.REST.Key,
			HTTPPort:          yamlConfig.REST.Port,
			DefaultListenAddr: yamlConfig.REST.ListenAddr,
		}
	}

	y.config = config
	return config, nil
}

// GetStorageConfig returns the storage section of the configuration
func (y *YAMLProvider) GetStorageConfig() (*StorageData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Storage, nil
}

// GetRESTServerConfig returns the REST server section of the configuration
func (y *YAMLProvider) GetRESTServerConfig() (*RESTServerData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.RESTServer, nil
}

// IsReadOnly returns true: YAML configs are edited by hand, not by the
// application
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}
