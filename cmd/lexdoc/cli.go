package main

import (
	"context"
	"io"
	"log/slog"

	"lexdoc"
	"lexdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Documents lexdoc.DocumentService
	Chats     lexdoc.ChatService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Run the document processing HTTP server"`
}
