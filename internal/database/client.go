package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mhoque/drillsight/internal/log"
	"go.uber.org/zap"
)

// Client holds the connection to the well database
type Client struct {
	DB     *gorm.DB // Exported so it can be accessed from other packages
	logger *zap.SugaredLogger
}

// NewClient creates a new database client
func NewClient(logger *zap.SugaredLogger) *Client {
	return &Client{
		logger: logger,
	}
}

// Connect connects to the PostgreSQL database and migrates the schema
func (c *Client) Connect(connectionString string) error {
	var err error

	log.Info("connecting to well database...")
	c.DB, err = CreateConnection(connectionString)
	if err != nil {
		return err
	}
	log.Info("well database connection successful")

	return c.DB.AutoMigrate(
		&Well{},
		&SurveyStation{},
		&DailyDrillingReport{},
		&DrillingLithology{},
		&WellPrognosis{},
		&GasShowMeasurement{},
	)
}

// CreateConnection is a helper function to create a database connection
// with standard GORM configuration
func CreateConnection(connectionString string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{Logger: gormLogger()})
	if err != nil {
		log.Warn("warning: unable to create a database connection:", err)
		return nil, err
	}

	return db, nil
}

// gormLogger bridges GORM's logging into zap
func gormLogger() logger.Interface {
	return logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
