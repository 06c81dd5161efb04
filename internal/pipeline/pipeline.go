package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/FellOffFuji/vmdlpoints/internal/cache"
	"github.com/FellOffFuji/vmdlpoints/internal/extract"
	"github.com/FellOffFuji/vmdlpoints/internal/model"
	"github.com/FellOffFuji/vmdlpoints/internal/scene"
	"github.com/FellOffFuji/vmdlpoints/internal/transform"
	"github.com/FellOffFuji/vmdlpoints/internal/validate"
)

// Pipeline orchestrates the complete extraction:
// read -> scan/extract -> validate/filter -> convert.
// Each run is a stateless pass over one document.
type Pipeline struct {
	reader    *Reader
	extractor *extract.AttachmentExtractor
	validator *validate.Validator
	reports   cache.Cache // nil when caching is disabled
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	allowed, err := validate.AllowListForMode(cfg.Extract.Filter)
	if err != nil {
		return nil, err
	}

	var reports cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			reports = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			reports = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		reader:    NewReader(cfg.Extract.MaxBytes),
		extractor: extract.NewAttachmentExtractor(),
		validator: validate.NewValidator(allowed),
		reports:   reports,
		config:    cfg,
	}, nil
}

// Result contains the complete extraction result
type Result struct {
	Report *model.Report
	Cached bool
}

// ExtractFile runs the full pipeline over one document
func (p *Pipeline) ExtractFile(path string) (*Result, error) {
	// 1. Read the document (only fatal failure in the run)
	src, err := p.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	// 2. Check the report cache keyed on file identity and filter mode
	key := cache.CacheKey(path, src.Meta, p.config.Extract.Filter)
	if p.reports != nil {
		if data, found := p.reports.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(data, &report); err == nil && report.Filter == p.config.Extract.Filter {
				return &Result{Report: &report, Cached: true}, nil
			}
			// Corrupt or mismatched entry: drop it and re-parse.
			_ = p.reports.Delete(key)
		}
	}

	// 3. Scan blocks and extract fields
	records, warnings := p.extractor.Extract(src.Text)

	// 4. Validate records and apply the allow-list filter
	kept, outcome := p.validator.Apply(records)

	// 5. Convert accepted records to spatial placements
	placements := make([]model.Placement, 0, len(kept))
	for _, att := range kept {
		placements = append(placements, transform.Convert(att))
	}

	// 6. Build the report
	report := &model.Report{
		Source:      path,
		ParsedAt:    time.Now().UTC(),
		FileMeta:    src.Meta,
		Attachments: kept,
		Placements:  placements,
		Warnings:    warnings,
		Filter:      p.config.Extract.Filter,
		Outcome:     outcome,
	}

	if p.reports != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.reports.Set(key, data, 0)
		}
	}

	return &Result{Report: report}, nil
}

// BuildScene hands every placement in the report to the scene builder,
// placing the points into the configured collection.
func (p *Pipeline) BuildScene(report *model.Report, builder scene.Builder) error {
	collection := p.config.Output.SceneCollection
	for _, placement := range report.Placements {
		if err := builder.CreatePoint(collection, placement); err != nil {
			return fmt.Errorf("create point %q: %w", placement.Name, err)
		}
	}
	return nil
}
