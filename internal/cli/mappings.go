package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pfrederiksen/olympic-medals/internal/config"
	"github.com/pfrederiksen/olympic-medals/internal/logger"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
	"github.com/pfrederiksen/olympic-medals/internal/scraper"
	"github.com/pfrederiksen/olympic-medals/internal/storage"
	"github.com/spf13/cobra"
)

func newMappingsCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Rebuild the committee name and flag mapping files",
		Long: `Scrapes the reference list of committee codes and writes name_to_noc.json and
noc_to_iso.json. Built-in overrides take precedence over scraped entries.`,
		Args: cobra.NoArgs,
		RunE: runMappings,
	}

	cmd.Flags().StringVar(&flagMappingPage, "mapping-page", cfg.MappingPage, "Wiki page listing committee codes (env: MEDALS_MAPPING_PAGE)")

	return cmd
}

func runMappings(cmd *cobra.Command, args []string) error {
	cfg, format, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Geo codes for scraped entries come from the built-in tables only, so a stale
	// mapping file cannot feed back into its replacement
	sc := scraper.New(cfg.APIURL, noc.NewDefaultResolver(noc.NewMapping()))

	logger.Info("Fetching committee code list", logger.Fields{"page": cfg.MappingPage})

	start := time.Now()
	scraped, found, err := sc.FetchMapping(cfg.MappingPage)
	logger.RecordTiming("fetch.mapping", time.Since(start))
	if err != nil {
		logger.Error("Fetching committee code list failed", logger.Fields{"page": cfg.MappingPage}, err)
		return fmt.Errorf("fetching mapping page: %w", err)
	}
	if !found {
		logger.Warn("Committee code table not found, writing built-in mapping only", logger.Fields{"page": cfg.MappingPage})
	}

	mapping := scraped.Merge(noc.DefaultMapping())
	names, codes := mapping.Len()

	if flagDryRun {
		logger.Info("Dry run, not writing mapping files", nil)
	} else {
		store, err := storage.New(cfg.MappingDir)
		if err != nil {
			return fmt.Errorf("initializing mapping storage: %w", err)
		}
		if err := store.SaveMapping(mapping); err != nil {
			return fmt.Errorf("saving mapping: %w", err)
		}
		logger.Info("Wrote mapping files", logger.Fields{"dir": cfg.MappingDir, "names": names, "codes": codes})
	}

	out := cmd.OutOrStdout()
	if format == FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]interface{}{
			"nameToCode": mapping.NameToCode,
			"codeToGeo":  mapping.CodeToGeo,
		})
	}

	fmt.Fprintf(out, "Mapping: %d names, %d codes (%d scraped names)\n", names, codes, len(scraped.NameToCode))
	return nil
}
