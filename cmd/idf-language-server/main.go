package main

import (
	"fmt"
	"os"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/internal/version"
	"enerdocs.dev/idfls/lsp"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version.GetFullVersion())
		return
	}

	server, err := lsp.NewServer()
	if err != nil {
		log.Error("Failed to create LSP server: %v", err)
		os.Exit(1)
	}

	// Run with stdio transport (for VSCode and other editors)
	if err := server.RunStdio(); err != nil {
		log.Error("Server error: %v", err)
		os.Exit(1)
	}
}
