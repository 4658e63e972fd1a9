package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"movierec/internal/api"
	"movierec/internal/catalog"
	"movierec/internal/config"
	"movierec/internal/domain"
	"movierec/internal/embedding/count"
	"movierec/internal/embedding/tfidf"
	"movierec/internal/logging"
	"movierec/internal/service"
	"movierec/internal/source/builtin"
	"movierec/internal/source/sqlite"
	"movierec/internal/source/yamlfile"
	"movierec/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath    string
		serve      bool
		seedSQLite string
		exportYAML string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./movierec.yaml or ~/.config/movierec/config.yaml)")
	flag.BoolVar(&serve, "serve", false, "Serve the HTTP API instead of the terminal UI")
	flag.StringVar(&seedSQLite, "seed-sqlite", "", "Write the builtin catalog to a SQLite database and exit")
	flag.StringVar(&exportYAML, "export-yaml", "", "Write the builtin catalog to a YAML file and exit")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid config")
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	if seedSQLite != "" || exportYAML != "" {
		movies, _ := builtin.NewLoader().Load()
		if seedSQLite != "" {
			if err := sqlite.Seed(seedSQLite, movies); err != nil {
				logging.Fatal().Err(err).Msg("seed sqlite catalog")
			}
		}
		if exportYAML != "" {
			if err := yamlfile.Save(exportYAML, movies); err != nil {
				logging.Fatal().Err(err).Msg("export yaml catalog")
			}
		}
		return
	}

	// Assemble components
	var loader domain.Loader
	switch cfg.Catalog.Type {
	case "yaml":
		loader = yamlfile.NewLoader(cfg.Catalog.Path)
	case "sqlite":
		loader = sqlite.NewLoader(cfg.Catalog.Path)
	default:
		loader = builtin.NewLoader()
	}

	var emb domain.Embedder
	switch cfg.Fingerprint.Type {
	case "tfidf":
		emb = tfidf.NewEmbedder()
	default:
		emb = count.NewEmbedder()
	}

	movies, err := loader.Load()
	if err != nil {
		logging.Fatal().Err(err).Str("source", loader.Name()).Msg("load catalog")
	}
	cat, err := catalog.New(movies)
	if err != nil {
		logging.Fatal().Err(err).Str("source", loader.Name()).Msg("build catalog")
	}
	rec, err := service.NewRecommender(cat, emb, logging.With("recommender"))
	if err != nil {
		logging.Fatal().Err(err).Msg("build recommender")
	}

	if serve {
		srv := api.NewServer(rec, api.Defaults{
			SimilarTopN: cfg.Recommend.SimilarTopN,
			GenreTopN:   cfg.Recommend.GenreTopN,
			TopRatedN:   cfg.Recommend.TopRatedN,
		}, logging.With("api"))
		logging.Info().Str("addr", cfg.Server.ListenAddr).Msg("starting HTTP server")
		if err := http.ListenAndServe(cfg.Server.ListenAddr, srv.Routes()); err != nil {
			logging.Fatal().Err(err).Msg("http server")
		}
		return
	}

	logOut, closeLog, err := logOutput(cfg)
	if err != nil {
		logging.Warn().Err(err).Str("file", cfg.Logging.File).Msg("cannot open log file, discarding logs while the terminal UI runs")
	}
	defer closeLog()
	logging.SetOutput(logOut)

	m := tui.New(rec, service.DefaultGenres, tui.Limits{
		Similar:  cfg.Recommend.SimilarTopN,
		Genre:    cfg.Recommend.GenreTopN,
		TopRated: cfg.Recommend.TopRatedN,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.SetOutput(os.Stderr)
		closeLog()
		logging.Fatal().Err(err).Msg("terminal ui")
	}
}

// logOutput keeps log lines off the terminal while the TUI owns it.
// On error the returned writer discards.
func logOutput(cfg *config.AppConfig) (io.Writer, func(), error) {
	if cfg.Logging.File == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
