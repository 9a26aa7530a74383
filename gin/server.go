// Package gin provides the HTTP boundary of the service. Handlers
// translate requests into domain operations and map domain error codes
// onto HTTP statuses.
package gin

import (
	"context"
	"net/http"
	"time"

	"lexdoc"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultTopN is the keyword count used when a request does not specify one.
const DefaultTopN = 7

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Config carries the server settings fixed at startup.
type Config struct {
	Addr         string
	DownloadsDir string
	DefaultTopN  int
	AllowOrigins []string
}

// Server serves the document processing API. Service fields must be set
// before Open is called.
type Server struct {
	router *gin.Engine
	server *http.Server
	config Config

	DocumentService lexdoc.DocumentService
	ChatService     lexdoc.ChatService
	Extractor       lexdoc.TextExtractor
	Corrector       lexdoc.Corrector
	Keywords        lexdoc.KeywordExtractor
	Downloader      lexdoc.Downloader
	Scraper         lexdoc.LinkScraper
	Pipeline        lexdoc.Pipeline
}

// NewServer creates a new Server with routes registered.
func NewServer(config Config) *Server {
	if config.DefaultTopN <= 0 {
		config.DefaultTopN = DefaultTopN
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(config.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = config.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	s := &Server{
		router: router,
		config: config,
	}

	router.GET("/health", s.handleHealth)

	router.POST("/save-file", s.handleSaveFile)
	router.GET("/file-content", s.handleFileContent)
	router.GET("/file-corrected-content", s.handleFileCorrectedContent)
	router.GET("/download-corrected-txt", s.handleDownloadCorrectedTxt)
	router.POST("/save-keywords", s.handleSaveKeywords)
	router.POST("/save-chat-history", s.handleSaveChatHistory)
	router.PATCH("/save-corrected-text", s.handleSaveCorrectedText)

	router.GET("/download-pdf", s.handleDownloadPDF)
	router.GET("/download-pdf-return", s.handleDownloadPDFReturn)
	router.GET("/scrape-pdfs", s.handleScrapePDFs)
	router.POST("/ocr-pdf", s.handleOCRPDF)
	router.POST("/correct-text", s.handleCorrectText)
	router.POST("/extract-keywords", s.handleExtractKeywords)
	router.POST("/ask-for-advice", s.handleAskForAdvice)
	router.POST("/load-pdf-data", s.handleLoadPDFData)

	return s
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on the configured address and blocks until the
// context is canceled or the listener fails.
func (s *Server) Open(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "lexdoc",
	})
}

// error writes the domain error as the response, mapping its code to an
// HTTP status. Only the human-readable message is exposed.
func (s *Server) error(c *gin.Context, err error) {
	c.JSON(errorStatus(lexdoc.ErrorCode(err)), gin.H{"error": lexdoc.ErrorMessage(err)})
}

func errorStatus(code string) int {
	switch code {
	case lexdoc.EINVALID:
		return http.StatusBadRequest
	case lexdoc.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
