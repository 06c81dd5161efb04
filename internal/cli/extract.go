package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
	"github.com/FellOffFuji/vmdlpoints/internal/pipeline"
	"github.com/FellOffFuji/vmdlpoints/internal/scene"
)

var (
	filterMode string
	outJSON    string
	outScene   string
	collection string
	maxBytes   int64
	noCache    bool
	cacheDir   string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.vmdl>",
	Short: "Extract attachment points from a single vmdl file",
	Long: `Extract parses one vmdl model description file:
- Locate every block tagged _class = "Attachment"
- Pull out name, parent bone, origin, and angles
- Drop incomplete records, optionally keep only weapon aim points
- Convert origin/angles into position + YZX Euler placements

Example:
  vmdlpoints extract hero.vmdl
  vmdlpoints extract hero.vmdl --filter weapon-points --scene hero_points.yaml
  vmdlpoints extract hero.vmdl --json hero_report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&filterMode, "filter", "all", "attachment filter: all | weapon-points")
	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	extractCmd.Flags().StringVar(&outScene, "scene", "", "output YAML scene document path (optional)")
	extractCmd.Flags().StringVar(&collection, "collection", scene.DefaultCollection, "scene collection the points are placed into")
	extractCmd.Flags().Int64Var(&maxBytes, "max-bytes", 16<<20, "max document bytes to read")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh parse)")
	extractCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: memory only)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := buildConfig()
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", path)
		fmt.Fprintf(os.Stderr, "Filter: %s\n", cfg.Extract.Filter)
		fmt.Fprintln(os.Stderr)
	}

	result, err := p.ExtractFile(path)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	report := result.Report

	reportWarnings(report)

	switch report.Outcome {
	case model.OutcomeNoMatchesAfterFilter:
		color.Yellow("Filter is active, but no matching weapon attachments were found in the file.")
		return nil
	case model.OutcomeNoAttachments:
		color.Yellow("No attachment data found in file after parsing/filtering.")
		return nil
	}

	if verbose {
		if result.Cached {
			fmt.Fprintf(os.Stderr, "✓ Report served from cache\n")
		}
		for _, placement := range report.Placements {
			fmt.Fprintf(os.Stderr, "✓ Created standalone attachment point '%s'\n", placement.Name)
		}
		fmt.Fprintln(os.Stderr)
	}

	if outJSON != "" || outScene != "" {
		renderer := pipeline.NewRenderer()
		if outJSON != "" {
			if err := renderer.RenderJSON(report, outJSON); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
		}
		if outScene != "" {
			builder := scene.NewDocumentBuilder()
			if err := p.BuildScene(report, builder); err != nil {
				return fmt.Errorf("build scene: %w", err)
			}
			if err := renderer.RenderScene(builder.Document(), outScene); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
		}
	}

	fmt.Printf("Successfully extracted %d attachment points.\n", len(report.Placements))
	return nil
}

// reportWarnings prints the local field parse failures collected during
// extraction
func reportWarnings(report *model.Report) {
	for _, w := range report.Warnings {
		color.Yellow("Warning: %s for %s in attachment %s.", w.Message, w.Field, w.Attachment)
	}
}

// buildConfig assembles the pipeline configuration from flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Extract.Filter = model.FilterMode(filterMode)
	cfg.Extract.MaxBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	cfg.Output.SceneCollection = collection
	return cfg
}
