package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mhoque/drillsight/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	if _, err := os.Stat(*sqliteFile); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
		fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
		os.Exit(1)
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	fmt.Printf("Loading YAML configuration...\n")
	yamlProvider := config.NewYAMLProvider(*yamlFile)
	configData, err := yamlProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	printConfigSummary(configData)

	if *dryRun {
		fmt.Println("DRY RUN complete - no database created")
		return
	}

	if err := os.Remove(*sqliteFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error removing existing SQLite file: %v\n", err)
		os.Exit(1)
	}

	sqliteProvider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	if err := sqliteProvider.SetStorageConfig(&configData.Storage); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing storage configuration: %v\n", err)
		os.Exit(1)
	}
	if configData.RESTServer != nil {
		if err := sqliteProvider.SetRESTServerConfig(configData.RESTServer); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing REST server configuration: %v\n", err)
			os.Exit(1)
		}
	}

	// Read it back to confirm the round trip
	if _, err := sqliteProvider.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying converted configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion complete: %s\n", *sqliteFile)
}

func printConfigSummary(cfg *config.ConfigData) {
	if cfg.Storage.Postgres != nil && cfg.Storage.Postgres.ConnectionString != "" {
		fmt.Println("  Storage: PostgreSQL configured")
	} else {
		fmt.Println("  Storage: none configured")
	}
	if cfg.RESTServer != nil {
		port := cfg.RESTServer.HTTPPort
		if port == 0 {
			port = 8080
		}
		fmt.Printf("  REST server: port %d\n", port)
	} else {
		fmt.Println("  REST server: not configured")
	}
}
