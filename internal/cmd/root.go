package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/harrison/mdfiles/internal/config"
	"github.com/harrison/mdfiles/internal/dates"
	"github.com/harrison/mdfiles/internal/finder"
	"github.com/harrison/mdfiles/internal/logger"
	"github.com/harrison/mdfiles/internal/models"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for mdfiles
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdfiles",
		Short: "List files modified on a given date as Markdown links",
		Long: `mdfiles walks a directory tree and prints every file whose name ends
with the given suffix and whose modification date is the given day,
one Markdown list item per file:

  - [main.go](./cmd/mdfiles/main.go)

Dates are compared in the local time zone. Files that cannot be read are
skipped silently. Settings can also come from .mdfiles.yaml in the
working directory; flags win over the file.

Examples:
  mdfiles                          # .go files changed today under .
  mdfiles -d 2025-12-25            # .go files changed on Christmas 2025
  mdfiles -s .md -r docs           # Markdown files in docs changed today
  mdfiles --exclude vendor --exclude node_modules

Exit code: 0 on success (including no matches), 1 on errors`,
		Version: Version,
		Args:    cobra.NoArgs,
		// main prints the error once; cobra should not add usage or a second copy
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	cmd.Flags().StringP("date", "d", "", "Date in YYYY-MM-DD format (default: today)")
	cmd.Flags().StringP("suffix", "s", ".go", "File name suffix to match")
	cmd.Flags().StringP("root", "r", ".", "Directory to start searching from")
	cmd.Flags().StringSlice("exclude", nil, "Directory names to skip (repeatable)")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth (0 = unlimited, 1 = root only)")
	cmd.Flags().String("config", "", "Path to config file (default: "+config.DefaultFileName+")")
	cmd.Flags().String("log-level", logger.DefaultLevel, "Log verbosity on stderr: trace, debug, info, warn, error")

	return cmd
}

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	// The date is resolved first so a bad date fails before anything is read.
	dateFlag, _ := cmd.Flags().GetString("date")
	target, err := dates.Resolve(dateFlag, time.Now)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if source != "" {
		log.LogInfo(fmt.Sprintf("using config file %s", source))
	}

	search := models.SearchConfig{
		Date:        target,
		Suffix:      cfg.Suffix,
		Root:        cfg.Root,
		Location:    time.Local,
		ExcludeDirs: cfg.Exclude,
		MaxDepth:    cfg.MaxDepth,
	}

	_, err = finder.New(nil, log).Run(cmd.Context(), search, cmd.OutOrStdout())
	return err
}

// loadConfig reads the config file and applies every flag the user set
// explicitly on top of it. source is the file the settings came from, or
// empty when only defaults and flags apply.
func loadConfig(cmd *cobra.Command) (cfg *config.Config, source string, err error) {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.DefaultFileName
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		source = configPath
	} else if explicit {
		return nil, "", fmt.Errorf("failed to load config %s: %w", configPath, statErr)
	}

	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return nil, "", err
	}

	var (
		suffix, root, logLevel *string
		exclude                *[]string
		maxDepth               *int
	)
	flags := cmd.Flags()
	if flags.Changed("suffix") {
		v, _ := flags.GetString("suffix")
		suffix = &v
	}
	if flags.Changed("root") {
		v, _ := flags.GetString("root")
		root = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevel = &v
	}
	if flags.Changed("exclude") {
		v, _ := flags.GetStringSlice("exclude")
		exclude = &v
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		maxDepth = &v
	}
	cfg.MergeWithFlags(suffix, root, logLevel, exclude, maxDepth)

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, source, nil
}
