package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crmkit/go-crm-timeline/internal/util"
)

// FileScanner finds origin snapshot files under a data directory. Snapshots
// are the JSON payloads the record-fetch layer wrote for each prospect or
// customer.
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory tree and returns every .json file path, sorted so
// origin order is reproducible between runs.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	dirCount := 0
	totalCount := 0

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip path (error): %s - %v", path, err))
			return nil
		}

		if info.IsDir() {
			dirCount++
			return nil
		}

		totalCount++
		if strings.HasSuffix(strings.ToLower(path), ".json") {
			files = append(files, path)
		}

		return nil
	})

	util.LogDebug(fmt.Sprintf("Snapshot scan completed: duration %v, scanned %d directories, %d files, found %d snapshots",
		time.Since(start), dirCount, totalCount, len(files)))

	return files, err
}
