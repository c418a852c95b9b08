package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
	"github.com/crmkit/go-crm-timeline/internal/data/parser"
	"github.com/crmkit/go-crm-timeline/internal/data/scanner"
	"github.com/crmkit/go-crm-timeline/internal/presentation/formatter"
	"github.com/crmkit/go-crm-timeline/internal/util"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the timeline whenever snapshot files change",
	Long: `Watches the snapshot directory and re-renders the activity timeline on
every content change. Rename/chmod noise and writes that leave the file
identical are filtered out via a file fingerprint.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	dir := expandPath(dataDir)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("snapshot directory not available: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchTree(watcher, dir); err != nil {
		return err
	}

	w := &watchLoop{
		parser:       parser.NewParser(runtime.NumCPU()),
		assembler:    timeline.NewAssembler(timezone),
		fingerprints: make(map[string]string),
	}
	w.render()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	util.LogInfof("Watching %s for snapshot changes", dir)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Directories created mid-watch must be registered too,
			// or snapshots written into them go unseen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						util.LogWarnf("Cannot watch new directory %s: %v", event.Name, err)
					}
					continue
				}
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) {
				continue
			}
			if w.unchanged(event.Name) {
				continue
			}
			util.LogDebugf("Snapshot changed: %s (%s)", event.Name, event.Op)
			w.parser.Invalidate(event.Name)
			w.render()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogError("File monitoring error: " + err.Error())

		case <-stop:
			util.LogInfo("Watch stopped")
			return nil
		}
	}
}

// watchTree registers dir and every directory below it with the watcher.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}

// watchLoop holds the pieces one watch session keeps between renders.
type watchLoop struct {
	parser       *parser.Parser
	assembler    *timeline.Assembler
	fingerprints map[string]string
}

// unchanged reports whether the file's fingerprint matches the last render,
// filtering out fsnotify events that did not alter content. Deleted files
// always count as changed.
func (w *watchLoop) unchanged(path string) bool {
	info, err := util.GetFileInfo(path)
	if err != nil {
		delete(w.fingerprints, path)
		return false
	}
	fp := info.Fingerprint()
	if w.fingerprints[path] == fp {
		return true
	}
	w.fingerprints[path] = fp
	return false
}

// render loads the current snapshots and prints the timeline once.
func (w *watchLoop) render() {
	files, err := scanner.NewFileScanner(expandPath(dataDir)).Scan()
	if err != nil {
		util.LogErrorf("Snapshot scan failed: %v", err)
		return
	}

	origins, err := w.parser.ParseAll(files)
	if err != nil {
		util.LogWarnf("Some snapshots failed to parse: %v", err)
	}

	now, err := resolveNow()
	if err != nil {
		util.LogErrorf("Invalid reference time: %v", err)
		return
	}

	fmt.Printf("--- %s ---\n", now.Format(time.RFC3339))
	result := w.assembler.Assemble(origins, now)
	if err := formatter.New(outputFormat).Format(result); err != nil {
		util.LogErrorf("Render failed: %v", err)
	}
}
