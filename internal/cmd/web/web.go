// Package web wires configuration and startup for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/Xavientois/shuttle/internal/platform/config"
	"github.com/Xavientois/shuttle/internal/platform/otel"
	"github.com/Xavientois/shuttle/internal/storage/sqlite"
	"github.com/Xavientois/shuttle/internal/telemetry"
	"github.com/Xavientois/shuttle/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string
	CatalogFile string
	TelemetryDB string
}

type envConfig struct {
	HTTPAddr    string `env:"SHUTTLE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	CatalogFile string `env:"SHUTTLE_WEB_CATALOG_FILE"`
	TelemetryDB string `env:"SHUTTLE_WEB_TELEMETRY_DB"`
}

// ParseConfig parses environment defaults and flags into a Config.
// Flags win over environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var fromEnv envConfig
	if err := config.ParseEnv(&fromEnv); err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:    fromEnv.HTTPAddr,
		CatalogFile: fromEnv.CatalogFile,
		TelemetryDB: fromEnv.TelemetryDB,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogFile, "catalog-file", cfg.CatalogFile, "TOML card catalog file (built-in catalog when empty)")
	fs.StringVar(&cfg.TelemetryDB, "telemetry-db", cfg.TelemetryDB, "SQLite telemetry database path (telemetry off when empty)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "shuttle-web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	cards, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	var emitter *telemetry.Emitter
	if strings.TrimSpace(cfg.TelemetryDB) != "" {
		store, err := sqlite.Open(cfg.TelemetryDB)
		if err != nil {
			return fmt.Errorf("open telemetry store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close telemetry store: %v", err)
			}
		}()
		emitter = telemetry.NewEmitter(store)
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Catalog:   cards,
		Telemetry: emitter,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), nil
	}
	cards, err := catalog.LoadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return cards, nil
}
