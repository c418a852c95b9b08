package parser

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/util"
)

// Parser loads origin snapshot files from disk. A snapshot file holds either
// a single origin object or an array of origins; either way the result is a
// flat origin list in file order. Parsed files are cached by path for the
// lifetime of the Parser.
type Parser struct {
	concurrency int
	mu          sync.Mutex
	cache       map[string][]model.Origin
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File    string
	Origins []model.Origin
	Error   error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{
		concurrency: concurrency,
		cache:       make(map[string][]model.Origin),
	}
}

// ParseFile parses the snapshot at the specified path and returns the
// origins it carries.
func (p *Parser) ParseFile(filepath string) ([]model.Origin, error) {
	p.mu.Lock()
	if cached, ok := p.cache[filepath]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing snapshot: %s", filepath))

	data, err := os.ReadFile(filepath)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to read snapshot: %s - %v", filepath, err))
		return nil, err
	}

	origins, err := decodeOrigins(data)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Skip invalid snapshot %s - %v", filepath, err))
		return nil, fmt.Errorf("decode snapshot %s: %w", filepath, err)
	}

	p.mu.Lock()
	p.cache[filepath] = origins
	p.mu.Unlock()

	return origins, nil
}

// Invalidate drops the cached origins for a path, forcing the next
// ParseFile to re-read the file. Used by the watch loop after a change.
func (p *Parser) Invalidate(filepath string) {
	p.mu.Lock()
	delete(p.cache, filepath)
	p.mu.Unlock()
}

// decodeOrigins accepts either a JSON array of origins or a single origin
// object.
func decodeOrigins(data []byte) ([]model.Origin, error) {
	var many []model.Origin
	if err := sonic.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one model.Origin
	if err := sonic.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []model.Origin{one}, nil
}

// ParseFiles parses multiple snapshot files concurrently and returns a
// channel of ParseResult. The channel is closed once every file finished.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	util.LogDebug(fmt.Sprintf("Start concurrent parsing of %d snapshots, concurrency: %d", len(files), p.concurrency))

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			origins, err := p.ParseFile(f)
			if err != nil {
				util.LogDebug(fmt.Sprintf("Snapshot parsing failed: %s - %v", f, err))
			}

			results <- ParseResult{
				File:    f,
				Origins: origins,
				Error:   err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebug(fmt.Sprintf("Concurrent parsing completed, total duration %v", time.Since(start)))
	}()

	return results
}

// ParseAll parses the files concurrently and flattens the origins back into
// input file order, so assembly stays deterministic regardless of which
// goroutine finished first.
func (p *Parser) ParseAll(files []string) ([]model.Origin, error) {
	byFile := make(map[string][]model.Origin, len(files))
	var firstErr error

	for result := range p.ParseFiles(files) {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		byFile[result.File] = result.Origins
	}

	var origins []model.Origin
	for _, f := range files {
		origins = append(origins, byFile[f]...)
	}
	return origins, firstErr
}
