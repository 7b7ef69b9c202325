package server

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/commentlabeler/config"
	"github.com/spacesedan/commentlabeler/internal/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultMaxUploadBytes = 32 << 20

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Processor turns an uploaded CSV into the labeled download.
type Processor interface {
	Process(ctx context.Context, upload io.Reader) (pipeline.Result, error)
}

type Server struct {
	accessToken    string
	maxUploadBytes int64
	provider       string
	proc           Processor
}

func New(cfg config.Config, proc Processor, provider string) *Server {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Server{
		accessToken:    cfg.AccessToken,
		maxUploadBytes: maxUpload,
		provider:       provider,
		proc:           proc,
	}
}

func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = s.maxUploadBytes
	router.Use(requestID(), requestLogger(), gin.Recovery())
	router.SetHTMLTemplate(indexTemplate)

	router.GET("/", s.handleIndex)
	router.POST("/analyze", s.handleAnalyze)
	router.GET("/healthz", s.handleHealthz)

	return router
}
