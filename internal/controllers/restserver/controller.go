package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/mhoque/drillsight/internal/database"
	"github.com/mhoque/drillsight/internal/log"
	"github.com/mhoque/drillsight/pkg/config"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	restConfig     config.RESTServerData
	Server         http.Server
	DB             *database.Client
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, rc config.RESTServerData, db *database.Client, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		restConfig:     rc,
		DB:             db,
		logger:         logger,
	}

	if db == nil {
		return nil, fmt.Errorf("REST server requires a database connection")
	}

	// If a DefaultListenAddr was not provided, listen on all interfaces
	if rc.DefaultListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.DefaultListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if rc.HTTPPort == 0 {
		logger.Info("rest.http_port not provided; defaulting to 8080")
		rc.HTTPPort = 8080
	}
	ctrl.restConfig = rc

	// Create handlers
	ctrl.handlers = NewHandlers(ctrl)

	// Set up router
	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.DefaultListenAddr, rc.HTTPPort)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.Cert != "" && c.restConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(log.HTTPRequestLogger)

	router.HandleFunc("/api/wells", c.handlers.GetWells).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{id:[0-9]+}/reports", c.handlers.GetReports).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{id:[0-9]+}/dashboard", c.handlers.GetDashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{id:[0-9]+}/trajectory", c.handlers.GetTrajectory).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{id:[0-9]+}/convert", c.handlers.ConvertDepth).Methods(http.MethodPost)
	router.HandleFunc("/api/wells/{id:[0-9]+}/survey", c.handlers.UploadSurvey).Methods(http.MethodPost)
	router.HandleFunc("/api/wells/{id:[0-9]+}/prognosis/populate-md", c.handlers.PopulatePrognosisMD).Methods(http.MethodPost)
	router.HandleFunc("/api/reports/{id:[0-9]+}/gas-shows", c.handlers.GetGasShows).Methods(http.MethodGet)

	return router
}
