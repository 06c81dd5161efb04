package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
	"github.com/FellOffFuji/vmdlpoints/internal/pipeline"
	"github.com/FellOffFuji/vmdlpoints/internal/scene"
	"github.com/FellOffFuji/vmdlpoints/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchScenes  bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract multiple vmdl files from a list in parallel",
	Long: `Batch processes multiple vmdl files concurrently:
- Read file paths from an input list (one per line)
- Extract files in parallel with a configurable worker count
- Generate an individual JSON report per file

Example:
  vmdlpoints batch models.txt
  vmdlpoints batch models.txt --concurrency 8 --output-dir ./reports
  vmdlpoints batch models.txt --filter weapon-points --scenes`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./vmdl-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchScenes, "scenes", false, "also emit a YAML scene document per file")

	// Inherit flags from extract command
	batchCmd.Flags().StringVar(&filterMode, "filter", "all", "attachment filter: all | weapon-points")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 16<<20, "max document bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh parse)")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: memory only)")
	batchCmd.Flags().StringVar(&collection, "collection", scene.DefaultCollection, "scene collection the points are placed into")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  vmdlpoints Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Filter:       %s\n", filterMode)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	// Create batch processor
	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Reading paths from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Extracting with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	renderer := pipeline.NewRenderer()

	successCount := 0
	failureCount := 0
	emptyCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		if result.Report.Outcome != model.OutcomeOK {
			emptyCount++
			fmt.Fprintf(os.Stderr, "- %s: %s\n", result.Path, result.Report.Outcome)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}

		if batchScenes {
			builder := scene.NewDocumentBuilder()
			if err := p.BuildScene(result.Report, builder); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to build scene: %v\n", result.Path, err)
				continue
			}
			scenePath := filepath.Join(outputDir, slug+".yaml")
			if err := renderer.RenderScene(builder.Document(), scenePath); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write scene: %v\n", result.Path, err)
				continue
			}
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d attachment points)\n", result.Path, len(result.Report.Placements))
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Empty:     %d\n", emptyCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename sanitizes a path for use as a report filename
func sanitizeFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	name = replacer.Replace(name)

	if name == "" {
		name = "report"
	}
	return name
}
