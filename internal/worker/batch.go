package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
	"github.com/FellOffFuji/vmdlpoints/internal/pipeline"
)

// Extractor defines the interface for extracting one vmdl document
type Extractor interface {
	ExtractFile(path string) (*pipeline.Result, error)
}

// ExtractJob represents a single-file extraction job
type ExtractJob struct {
	Path      string
	Extractor Extractor
}

// Execute executes the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ExtractResult{Path: j.Path, Error: err}
	}
	result, err := j.Extractor.ExtractFile(j.Path)
	if err != nil {
		return &ExtractResult{Path: j.Path, Error: err}
	}
	return &ExtractResult{Path: j.Path, Report: result.Report}
}

// ExtractResult represents the result of an extraction job
type ExtractResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the extraction result
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts multiple vmdl files concurrently
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessPaths extracts the given files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ExtractResult {
	if len(paths) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ExtractJob{
			Path:      path,
			Extractor: b.extractor,
		})
	}

	results := pool.Wait()

	extractResults := make([]*ExtractResult, len(results))
	for i, result := range results {
		extractResults[i] = result.(*ExtractResult)
	}

	return extractResults
}

// ProcessFile reads document paths from a list file and extracts them all
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*ExtractResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file (one per line),
// skipping blank lines and comments and deduplicating.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
