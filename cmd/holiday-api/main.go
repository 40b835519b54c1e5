package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klabast/wb-services/holiday-api/internal/app"
	"github.com/klabast/wb-services/holiday-api/internal/commands"
)

//go:embed static/index.html
var indexHTML []byte

func main() {
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "generate" {
		commands.Generate(os.Args[2:])
		return
	}

	// Parse flags
	port := flag.Int("port", app.DefaultPort, "Port to listen on")
	dataDir := flag.String("data", app.DefaultDataDir, "Directory with per-year dataset files")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags set on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Listen = fmt.Sprintf(":%d", *port)
		case "data":
			cfg.DataDir = *dataDir
		}
	})

	store := app.NewFileStore(cfg.DataDir)
	resolver := app.NewResolver(store)
	handler := app.NewHandler(resolver, indexHTML)

	app.RegisterMetrics()

	// Setup routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	log.Printf("Starting Holiday API on http://localhost%s", cfg.Listen)
	log.Printf("Data directory: %s", cfg.DataDir)
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		log.Fatal(err)
	}
}
