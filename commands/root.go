package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
	"github.com/crmkit/go-crm-timeline/internal/data/parser"
	"github.com/crmkit/go-crm-timeline/internal/data/scanner"
	"github.com/crmkit/go-crm-timeline/internal/presentation/formatter"
	"github.com/crmkit/go-crm-timeline/internal/util"
)

var (
	// Logging related
	debug bool

	// Data path
	dataDir string

	// Output related
	outputFormat string
	timezone     string

	// Reference instant, RFC3339; empty means wall clock
	nowFlag string

	rootCmd = &cobra.Command{
		Use:   "crm-timeline [snapshot...]",
		Short: "CRM activity timeline renderer",
		Long: `crm-timeline renders the merged activity timeline of CRM records.

It reads origin snapshot files (JSON payloads of prospects, customers and
linked accounts holding their task/event/call/email collections), merges them
without duplication, classifies every record as upcoming, overdue or past,
and prints the two sorted buckets.

Examples:
  crm-timeline prospect.json customer.json        # Render specific snapshots
  crm-timeline --dir ~/.crm-timeline/snapshots    # Render everything in a directory
  crm-timeline --output json prospect.json        # Machine-readable output
  crm-timeline --now 2024-06-01T00:00:00Z p.json  # Classify against a fixed instant
  crm-timeline watch --dir ./snapshots            # Re-render on file changes`,
		RunE: runRender,
	}
)

const (
	defaultLogFile = "~/.crm-timeline/logs/app.log"
	defaultDataDir = "~/.crm-timeline/snapshots"
	envPrefix      = "CRM_TIMELINE"
)

func init() {
	cobra.OnInitialize(initConfig)

	// Input data configuration
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDataDir,
		"Snapshot directory path, used when no snapshot files are given")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// Classification reference time
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "",
		"Fixed reference instant in RFC3339 (defaults to the current time)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// initConfig lets a config file and environment override flag defaults:
// ~/.crm-timeline/config.yaml, then CRM_TIMELINE_* variables, then flags.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(expandPath("~/.crm-timeline"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		util.LogDebugf("Using config file: %s", viper.ConfigFileUsed())
	}

	for _, key := range []string{"dir", "output", "timezone"} {
		flag := rootCmd.PersistentFlags().Lookup(key)
		if flag != nil && !flag.Changed && viper.IsSet(key) {
			flag.Value.Set(viper.GetString(key))
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	origins, err := loadOrigins(args)
	if err != nil {
		return err
	}

	now, err := resolveNow()
	if err != nil {
		return err
	}

	assembler := timeline.NewAssembler(timezone)
	result := assembler.Assemble(origins, now)
	util.LogDebugf("Assembled timeline: %d upcoming, %d past", len(result.Upcoming), len(result.Past))

	return formatter.New(outputFormat).Format(result)
}

// setup initializes logging and the timezone provider for one command run.
func setup() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(timezone)
}

// loadOrigins resolves the snapshot list (explicit args, else a directory
// scan) and parses every file into a flat, ordered origin list.
func loadOrigins(args []string) ([]model.Origin, error) {
	files := args
	if len(files) == 0 {
		var err error
		files, err = scanner.NewFileScanner(expandPath(dataDir)).Scan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot directory: %w", err)
		}
	}
	if len(files) == 0 {
		util.LogWarn("No snapshot files found; timeline will be empty")
		return nil, nil
	}

	p := parser.NewParser(runtime.NumCPU())
	origins, err := p.ParseAll(files)
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Loaded %d origins from %d snapshots", len(origins), len(files))
	return origins, nil
}

// resolveNow picks the classification instant: the --now flag when set,
// otherwise the wall clock, both in the configured timezone.
func resolveNow() (time.Time, error) {
	tp := util.GetTimeProvider()
	if nowFlag == "" {
		return tp.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q: %w", nowFlag, err)
	}
	return tp.In(t), nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
