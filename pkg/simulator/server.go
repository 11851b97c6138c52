package simulator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
	"github.com/rakhi930/microgrid-dashboard/pkg/version"
)

// Server serves the dashboard's API contract from fabricated data.
type Server struct {
	sc    *Scenario
	gen   *Generator
	model *Model
}

func NewServer(sc *Scenario) *Server {
	return &Server{
		sc:    sc,
		gen:   NewGenerator(sc),
		model: NewModel(sc.ModelType),
	}
}

// Handler builds the full HTTP handler: gin routes wrapped in permissive
// CORS so browser dashboards can call this like the hosted API.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/", s.getRoot)
	router.GET("/api/sensor-data", s.getSensorData)
	router.GET("/api/model-info", s.getModelInfo)
	router.POST("/api/predict", s.postPredict)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(router)
}

func (s *Server) getRoot(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"service": "microgrid simulator",
		"version": version.Version,
		"endpoints": []string{
			"/api/sensor-data",
			"/api/model-info",
			"/api/predict",
		},
	})
}

func (s *Server) getSensorData(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.gen.Snapshot())
}

func (s *Server) getModelInfo(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, api.ModelInfo{
		ModelLoaded: true,
		ModelType:   s.model.Type,
	})
}

func (s *Server) postPredict(c *gin.Context) {
	var req api.PredictionRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		_ = c.Error(err)
		return
	}

	c.IndentedJSON(http.StatusOK, s.model.Predict(req))
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func Run(sc *Scenario) error {
	s := NewServer(sc)

	srv := &http.Server{
		Addr:    sc.Listen,
		Handler: s.Handler(),
	}

	go func() {
		logrus.Infof("simulator listening on %s", sc.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
	return nil
}

// ginLogger routes gin request logs through logrus.
func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// other handler can change c.Path so:
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000000.0))
		statusCode := c.Writer.Status()

		entry := logger.WithFields(logrus.Fields{
			"statusCode": statusCode,
			"latency":    latency, // time to process
			"method":     c.Request.Method,
			"path":       path,
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else {
			msg := fmt.Sprintf("%s %s %d (%dms)", c.Request.Method, path, statusCode, latency)
			switch {
			case statusCode >= http.StatusInternalServerError:
				entry.Error(msg)
			case statusCode >= http.StatusBadRequest:
				entry.Warn(msg)
			default:
				entry.Debug(msg)
			}
		}
	}
}
