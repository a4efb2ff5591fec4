package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yourusername/catalog-table/config"
	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
	"github.com/yourusername/catalog-table/internal/infrastructure/exporter"
	"github.com/yourusername/catalog-table/internal/infrastructure/parser"
	"github.com/yourusername/catalog-table/internal/infrastructure/seed"
	"github.com/yourusername/catalog-table/internal/infrastructure/storage"
	"github.com/yourusername/catalog-table/internal/logging"
	"github.com/yourusername/catalog-table/internal/usecase"
)

// rootOptions persistent flags; non-empty values override the config file
type rootOptions struct {
	configPath string
	seedPath   string
	dbPath     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogtable",
		Short: "Filterable product catalog table",
		Long: `catalogtable shows a product catalog as a table that can be narrowed by
name, category, date, price and rating. Rows can be deleted for the
session and the visible set exported to a spreadsheet.`,
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (yaml)")
	f.StringVar(&opts.seedPath, "seed", "", "catalog file to load (.xlsx, .json, .jsonc, .yaml)")
	f.StringVar(&opts.dbPath, "db", "", "sqlite catalog database; takes precedence over --seed")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	cmd.AddCommand(
		newBrowseCmd(opts),
		newListCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

func (o *rootOptions) config() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.seedPath != "" {
		cfg.SeedPath = o.seedPath
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app wiring shared by every subcommand
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	catalog usecase.CatalogUseCase
	source  string
	closers []func() error
}

// newApp loads config and opens the catalog store. With logToFile the log
// goes to cfg.LogFile instead of the command's stderr.
func newApp(cmd *cobra.Command, opts *rootOptions, logToFile bool) (*app, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Fallback: cmd.ErrOrStderr()}
	if logToFile {
		logOpts.File = cfg.LogFile
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	var repo repository.RecordRepository
	if cfg.DBPath != "" {
		r, err := storage.NewSQLiteRecordRepository(cfg.DBPath)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		if c, ok := r.(io.Closer); ok {
			a.closers = append(a.closers, c.Close)
		}
		repo = r
	} else {
		repo = storage.NewMemoryRecordRepository()
	}

	a.catalog = usecase.NewCatalogUseCase(repo, parser.ByExtension(logger), exporter.NewExcelExporter(), logger)
	return a, nil
}

// seed loads the working set: the database when configured, else the seed
// file, else the built-in catalog. It also records where the rows came from.
func (a *app) seed(ctx context.Context) ([]entity.Record, error) {
	switch {
	case a.cfg.DBPath != "":
		// rows were stored by a previous import
	case a.cfg.SeedPath != "":
		if _, err := a.catalog.Import(ctx, a.cfg.SeedPath); err != nil {
			return nil, err
		}
	default:
		if _, err := a.catalog.ImportBytes(ctx, seed.DefaultCatalog(), seed.DefaultName); err != nil {
			return nil, err
		}
	}

	catalog, err := a.catalog.Seed(ctx)
	if errors.Is(err, repository.ErrEmptyCatalog) && a.cfg.DBPath != "" {
		return nil, fmt.Errorf("%s holds no records, run import first: %w", a.cfg.DBPath, err)
	}
	if err != nil {
		return nil, err
	}

	a.source = catalog.Source
	if a.cfg.DBPath != "" {
		a.source = fmt.Sprintf("%s (imported from %s)", a.cfg.DBPath, catalog.Source)
	}
	return catalog.Records, nil
}

// Close releases the store and the log file
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
