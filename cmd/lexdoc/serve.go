package main

import (
	"fmt"

	lexdocgin "lexdoc/gin"
	"lexdoc/goquery"
	lexdochttp "lexdoc/http"
	"lexdoc/kobold"
	"lexdoc/languagetool"
	"lexdoc/pipeline"
	"lexdoc/prose"
	lexdocslog "lexdoc/slog"
	"lexdoc/tesseract"
)

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string   `default:":8000" env:"LEXDOC_ADDR" help:"HTTP listen address"`
	EngineConfig    string   `default:"engine.yaml" env:"LEXDOC_ENGINE_CONFIG" help:"Path to the inference engine config file"`
	LanguageToolURL string   `default:"http://localhost:8081" env:"LEXDOC_LANGUAGETOOL_URL" help:"LanguageTool server base URL"`
	OCRLanguage     string   `default:"pol" env:"LEXDOC_OCR_LANG" help:"Tesseract language code"`
	PopplerPath     string   `default:"pdftoppm" env:"LEXDOC_PDFTOPPM" help:"Path to the pdftoppm binary"`
	DownloadsDir    string   `default:"downloads" env:"LEXDOC_DOWNLOADS_DIR" help:"Directory for downloaded PDF files"`
	TopN            int      `default:"7" env:"LEXDOC_TOP_N" help:"Default keyword count"`
	AllowOrigins    []string `env:"LEXDOC_ALLOW_ORIGINS" help:"CORS allowed origins (all when empty)"`
}

// Run starts the HTTP server and blocks until shutdown.
func (c *ServeCmd) Run(deps *Dependencies) error {
	engineConfig, err := kobold.LoadConfig(c.EngineConfig)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Set --engine-config to the inference engine config file")
		return fmt.Errorf("failed to load engine config: %w", err)
	}

	asker := kobold.NewAsker(engineConfig)
	// The engine may come up after us; a failed probe is not fatal.
	if err := asker.CheckEngine(deps.Ctx); err != nil {
		deps.Logger.Warn("inference engine not reachable", "url", engineConfig.BaseURL, "err", err)
	}

	extractor := tesseract.NewExtractor(
		tesseract.WithLanguage(c.OCRLanguage),
		tesseract.WithPopplerPath(c.PopplerPath),
	)
	corrector := languagetool.NewCorrector(c.LanguageToolURL)
	keywords := prose.NewExtractor()
	downloader := lexdocslog.NewLoggingDownloader(lexdochttp.NewDownloader(), deps.Logger)
	scraper := goquery.NewScraper()

	orchestrator := pipeline.NewOrchestrator(
		extractor, corrector, keywords, deps.Documents, asker,
		pipeline.WithDefaultTopN(c.TopN),
	)

	server := lexdocgin.NewServer(lexdocgin.Config{
		Addr:         c.Addr,
		DownloadsDir: c.DownloadsDir,
		DefaultTopN:  c.TopN,
		AllowOrigins: c.AllowOrigins,
	})
	server.DocumentService = deps.Documents
	server.ChatService = deps.Chats
	server.Extractor = extractor
	server.Corrector = corrector
	server.Keywords = keywords
	server.Downloader = downloader
	server.Scraper = scraper
	server.Pipeline = lexdocslog.NewLoggingPipeline(orchestrator, deps.Logger)

	deps.Logger.Info("server starting", "addr", c.Addr, "db", deps.DB.Path())
	return server.Open(deps.Ctx)
}
