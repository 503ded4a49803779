// Package src contains the Main function of musicsearch. It reads the
// configuration, sets up logging and wires together the clients for MusicBrainz,
// Wikidata, Wikipedia and the Cover Art Archive. Then it either runs the HTTP
// server or does a single lookup from the command line.
//
// At the moment it is in package src because it is imported from the project's
// root folder.
package src

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/ironsmile/musicsearch/src/art"
	"github.com/ironsmile/musicsearch/src/config"
	"github.com/ironsmile/musicsearch/src/description"
	"github.com/ironsmile/musicsearch/src/enrich"
	"github.com/ironsmile/musicsearch/src/entity"
	"github.com/ironsmile/musicsearch/src/helpers"
	"github.com/ironsmile/musicsearch/src/metrics"
	"github.com/ironsmile/musicsearch/src/musicbrainz"
	"github.com/ironsmile/musicsearch/src/source"
	"github.com/ironsmile/musicsearch/src/version"
	"github.com/ironsmile/musicsearch/src/webserver"
)

const shutdownTimeout = 30 * time.Second

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main(ctx context.Context, args []string) error {
	a := &application{
		fs:        afero.NewOsFs(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
	}
	return a.command().Run(ctx, args)
}

// application holds everything the commands need from the outside world.
type application struct {
	fs        afero.Fs
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
}

func (a *application) command() *cli.Command {
	return &cli.Command{
		Name:    "musicsearch",
		Usage:   "Enriches MusicBrainz entities with descriptions and album covers",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file. Default is $HOME/.musicsearch/config.toml",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Log debug messages",
			},
		},
		Action: a.serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: a.serve,
			},
			{
				Name:      "lookup",
				Usage:     "Print the enriched record of a single entity",
				ArgsUsage: "<mbid>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "Entity type of the MBID",
						Value: entity.Artist.String(),
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: a.lookup,
			},
			{
				Name:   "init-config",
				Usage:  "Write the default configuration file",
				Action: a.initConfig,
			},
		},
	}
}

// setUp reads the configuration and creates the logger. The returned closer must
// be called once the logger is no longer needed.
func (a *application) setUp(cmd *cli.Command) (*config.Config, *log.Logger, io.Closer, error) {
	cfg, err := config.FindAndParse(a.fs, cmd.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}

	if err := cfg.ApplyEnv(a.fs, a.lookupEnv); err != nil {
		return nil, nil, nil, err
	}

	if cmd.Bool("debug") {
		cfg.LogLevel = log.DebugLevel.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ResolvePaths(); err != nil {
		return nil, nil, nil, err
	}

	logWriter, closer := helpers.LogWriter(cfg.LogFile)
	if cfg.LogFile == "" {
		logWriter = a.stderr
	}

	logger, err := helpers.NewLogger(logWriter, cfg.LogLevel)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}

	return cfg, logger, closer, nil
}

// services creates the enricher and the art client from the configuration. `m`
// may be nil.
func services(
	cfg *config.Config,
	m *metrics.Metrics,
	logger *log.Logger,
) (*enrich.Enricher, *art.Client) {
	fetcher := source.NewClient(source.Options{
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.RequestTimeoutDuration(),
		MaxBodyBytes: cfg.MaxResponseBytes,
		Metrics:      m,
		Logger:       logger,
	})

	artClient := art.NewClient(fetcher, art.Options{
		ArchiveURL:   cfg.Sources.CoverArtArchive,
		UserAgent:    cfg.UserAgent,
		MaxImageSize: cfg.Artwork.MaxSize,
	})

	resolver := description.NewResolver(fetcher, description.Options{
		WikidataURL:     cfg.Sources.Wikidata,
		WikipediaURL:    cfg.Sources.Wikipedia,
		FallbackOnError: cfg.Description.FallbackOnError,
		Logger:          logger,
	})

	enricher := enrich.NewEnricher(
		musicbrainz.NewClient(fetcher, cfg.Sources.MusicBrainz),
		resolver,
		artClient,
		enrich.Options{
			MaxParallel: cfg.Enrich.MaxParallel,
			Metrics:     m,
			Logger:      logger,
		},
	)

	return enricher, artClient
}

func (a *application) serve(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, closer, err := a.setUp(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.PidFile != "" {
		if err := helpers.SetUpPidFile(a.fs, cfg.PidFile); err != nil {
			return err
		}
		defer func() {
			if err := helpers.RemovePidFile(a.fs, cfg.PidFile); err != nil {
				logger.Warn("cleaning up", "err", err)
			}
		}()
	}

	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
	}

	enricher, artClient := services(cfg, m, logger)
	srv := webserver.NewServer(cfg, enricher, artClient, m, logger)
	if err := srv.Serve(); err != nil {
		return fmt.Errorf("starting webserver: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopped := make(chan error, 1)
	go func() {
		stopped <- srv.Wait()
	}()

	select {
	case err := <-stopped:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}

	return <-stopped
}

func (a *application) lookup(ctx context.Context, cmd *cli.Command) error {
	mbid := cmd.Args().First()
	if mbid == "" {
		return errors.New("an MBID argument is required")
	}

	entityType, err := entity.ParseType(cmd.String("type"))
	if err != nil {
		return err
	}

	id, err := entity.NewIdentifier(mbid, entityType)
	if err != nil {
		return err
	}

	cfg, logger, closer, err := a.setUp(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	enricher, _ := services(cfg, nil, logger)
	rec, err := enricher.Enrich(ctx, id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.stdout)
	if cmd.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rec)
}

func (a *application) initConfig(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		var err error
		path, err = config.UserConfigPath()
		if err != nil {
			return err
		}
	}

	if err := config.WriteDefault(a.fs, path); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Configuration written in %s\n", path)
	return nil
}
