package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"psteg/internal/logging"
	"psteg/pkg/config"

	_ "psteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	shutdownTimeout = 15 * time.Second
)

// NewRouter godoc
// @title pSteg API
// @version 1.0
// @description An API to hide text messages in images
// @BasePath /api/v1
func NewRouter(logger *logging.Logger, serverConfig config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), logging.Middleware(logger))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1", limitRequestBody(serverConfig.MaxRequestBytes))
	v1.POST("/encode/image", EncodeImageHandler)
	v1.POST("/decode/image", DecodeImageHandler)

	return r
}

// NewHandler returns the router with gzip compression applied to its responses
func NewHandler(logger *logging.Logger, serverConfig config.ServerConfig) http.Handler {
	return gzhttp.GzipHandler(NewRouter(logger, serverConfig))
}

// StartServer serves the API until ctx is cancelled, then waits for in flight requests to finish
func StartServer(ctx context.Context, logger *logging.Logger, serverConfig config.ServerConfig) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", serverConfig.Port),
		Handler:           NewHandler(logger, serverConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}

type accessLogEntry struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Error           string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	bodySize := param.BodySize
	if bodySize < 0 {
		bodySize = 0
	}

	entry, err := json.Marshal(accessLogEntry{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(bodySize)),
		ResponseSizeRaw: bodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\":%q}\n", err.Error())
	}
	return string(entry) + "\n"
}
