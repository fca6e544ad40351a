package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/olympic-medals/internal/config"
	"github.com/pfrederiksen/olympic-medals/internal/logger"
	"github.com/pfrederiksen/olympic-medals/internal/medal"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
	"github.com/pfrederiksen/olympic-medals/internal/scraper"
	"github.com/pfrederiksen/olympic-medals/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagPage         string
	flagGames        string
	flagTopN         int
	flagPlaceholders int
	flagAPIURL       string
	flagOutputDir    string
	flagMappingDir   string
	flagMappingPage  string
	flagFormat       string
	flagDryRun       bool
	flagVerbose      bool
)

// NewRootCmd creates the root command. Flag defaults come from the environment.
func NewRootCmd() *cobra.Command {
	cfg, _ := config.Load()

	cmd := &cobra.Command{
		Use:   "medals",
		Short: "Generate the medal leaderboard data for the widget",
		Long: `Fetches a Wikipedia medal table, infers committee codes and flags, ranks the
top committees with tied ranks and writes medals.json. When the table is missing
or incomplete a placeholder leaderboard is written instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUpdate,
	}

	cmd.Flags().StringVar(&flagPage, "page", cfg.Page, "Wiki page holding the medal table (env: MEDALS_PAGE)")
	cmd.Flags().StringVar(&flagGames, "games", cfg.Games, "Display name of the Games (env: MEDALS_GAMES)")
	cmd.Flags().IntVar(&flagTopN, "top", cfg.TopN, "Number of leaderboard rows (env: MEDALS_TOP_N)")
	cmd.Flags().IntVar(&flagPlaceholders, "placeholders", cfg.Placeholder, "Size of the placeholder roster (env: MEDALS_PLACEHOLDER_COUNT)")
	cmd.Flags().StringVar(&flagOutputDir, "out-dir", cfg.OutputDir, "Directory for medals.json (env: MEDALS_OUTPUT_DIR)")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", cfg.APIURL, "MediaWiki API endpoint (env: MEDALS_API_URL)")
	pf.StringVar(&flagMappingDir, "mapping-dir", cfg.MappingDir, "Directory for the mapping files (env: MEDALS_MAPPING_DIR)")
	pf.StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	pf.BoolVar(&flagDryRun, "dry-run", false, "Print the result without writing files")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newMappingsCmd(cfg))

	return cmd
}

// resolveConfig applies flag values over the loaded configuration
func resolveConfig(cmd *cobra.Command) (config.Config, OutputFormat, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("loading config: %w", err)
	}

	cfg.Page = strings.TrimSpace(flagPage)
	cfg.Games = flagGames
	cfg.TopN = flagTopN
	cfg.Placeholder = flagPlaceholders
	cfg.APIURL = flagAPIURL
	cfg.OutputDir = flagOutputDir
	cfg.MappingDir = flagMappingDir
	cfg.MappingPage = flagMappingPage

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return config.Config{}, "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logger.LevelInfo
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	return cfg, format, nil
}

// loadResolver builds the resolver from the mapping files, or from the built-in
// tables alone when the files do not exist yet
func loadResolver(cfg config.Config) (*noc.Resolver, error) {
	store, err := storage.New(cfg.MappingDir)
	if err != nil {
		return nil, fmt.Errorf("initializing mapping storage: %w", err)
	}

	mapping, found, err := store.LoadMapping()
	if err != nil {
		return nil, fmt.Errorf("loading mapping: %w", err)
	}

	names, codes := mapping.Len()
	if found {
		logger.Debug("Loaded mapping files", logger.Fields{
			"dir":   cfg.MappingDir,
			"names": names,
			"codes": codes,
		})
	} else {
		logger.Info("No mapping files found, using built-in tables", logger.Fields{"dir": cfg.MappingDir})
	}

	return noc.NewResolver(noc.DefaultTables(mapping), cfg.FlagURL), nil
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, format, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	resolver, err := loadResolver(cfg)
	if err != nil {
		return err
	}

	sc := scraper.New(cfg.APIURL, resolver)

	logger.Info("Fetching medal table", logger.Fields{"page": cfg.Page, "api": cfg.APIURL})

	start := time.Now()
	result, err := sc.FetchMedals(cfg.Page, cfg.TopN)
	logger.RecordTiming("fetch.medals", time.Since(start))
	if err != nil {
		logger.Error("Fetching medal table failed", logger.Fields{"page": cfg.Page}, err)
		return fmt.Errorf("fetching medal table: %w", err)
	}

	logger.AddCounter("rows.extracted", int64(len(result.Rows)))
	logger.AddCounter("rows.skipped", int64(result.Skipped))

	switch {
	case !result.Found:
		logger.Warn("Medal table not found, using placeholders", logger.Fields{"page": cfg.Page})
	case len(result.Rows) < cfg.TopN:
		logger.Warn("Medal table has too few rows, using placeholders", logger.Fields{
			"page": cfg.Page,
			"rows": len(result.Rows),
			"want": cfg.TopN,
		})
	default:
		logger.Info("Medal table extracted", logger.Fields{
			"rows":    len(result.Rows),
			"skipped": result.Skipped,
		})
	}

	payload := medal.Assemble(result.Rows, medal.Options{
		TopN:       cfg.TopN,
		RosterSize: cfg.Placeholder,
		Source:     medal.DefaultSource,
		SourceURL:  cfg.PageURL(cfg.Page),
		Games:      cfg.Games,
		GamePage:   cfg.Page,
		Location:   loc,
		FlagURL:    resolver.FlagURL,
	}, time.Now())

	if !payload.IsLiveData {
		logger.IncrCounter("payload.not_live")
	}

	if flagDryRun {
		logger.Info("Dry run, not writing payload", nil)
	} else {
		store, err := storage.New(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output storage: %w", err)
		}
		path, err := store.SavePayload(payload)
		if err != nil {
			return fmt.Errorf("saving payload: %w", err)
		}
		logger.Info("Wrote payload", logger.Fields{"path": path, "live": payload.IsLiveData})
	}

	if err := WriteOutput(cmd.OutOrStdout(), payload, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Run metrics", logger.MetricsSummary())
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
