package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/placeholder-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("placeholder-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("placeholder-tools-mcp - MCP server for image placeholders and PNG data URIs")
			fmt.Println()
			fmt.Println("Usage: placeholder-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PLACEHOLDER_MCP_LOG_LEVEL=debug    Log every request and tool failure")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s (try --help)\n", os.Args[1])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	srv := server.New()
	if os.Getenv("PLACEHOLDER_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Placeholder MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		srv.SetDebug(true)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
