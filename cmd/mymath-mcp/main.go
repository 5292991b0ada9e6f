package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mymath/pkg/logger"
	"github.com/sunfmin/mymath/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	logger.Info("Starting Math Library MCP", "version", Version)

	mathServer := mcp.NewMathServer(Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(mathServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
