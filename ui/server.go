package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seqsense/app"
	"seqsense/internal"
	"seqsense/internal/config"
	"seqsense/internal/format"
	"seqsense/ports"
)

//go:embed templates/* templates/fragments/* static/* docs/*
var embeddedFiles embed.FS

// Server is the web surface: the input form, the rendered result with
// its chart, the prediction history and the JSON API.
type Server struct {
	router    *gin.Engine
	service   *app.PredictionService
	parser    ports.SequenceParser
	templates *template.Template
	log       *internal.Logger
	cfg       config.ServerConfig
}

// NewServer wires the gin router, templates and handlers.
func NewServer(cfg config.ServerConfig, service *app.PredictionService, parser ports.SequenceParser, logger *internal.Logger) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	funcMap := template.FuncMap{
		"fmtNum": format.Number,
		"fmtSeq": func(vs []float64) string { return format.Numbers(vs, ", ") },
		"pct":    func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
		"confClass": func(v float64) string {
			switch {
			case v >= 0.9:
				return "conf-high"
			case v >= 0.7:
				return "conf-medium"
			case v > 0.5:
				return "conf-low"
			default:
				return "conf-none"
			}
		},
		"ruleLabel": func(r fmt.Stringer) string {
			return strings.ReplaceAll(r.String(), "_", " ")
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles,
		"templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		service:   service,
		parser:    parser,
		templates: templates,
		log:       logger,
		cfg:       cfg,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	staticFS, _ := fs.Sub(embeddedFiles, "static")
	s.router.StaticFS("/static", http.FS(staticFS))

	s.router.GET("/", s.handleIndex)
	s.router.POST("/predict", s.handlePredictForm)
	s.router.GET("/history", s.handleHistory)
	s.router.GET("/families", s.handleFamiliesPage)

	api := s.router.Group("/api/v1")
	{
		api.POST("/predict", s.handlePredictJSON)
		api.POST("/predict/batch", s.handlePredictBatch)
		api.GET("/families", s.handleFamiliesJSON)
		api.GET("/history", s.handleHistoryJSON)
	}
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	s.log.Info("web server listening on %s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) render(c *gin.Context, status int, name string, data interface{}) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		s.log.Error("template %s: %v", name, err)
	}
}
