package model

import "time"

// Report represents the complete result of extracting one vmdl document
type Report struct {
	Source   string    `json:"source"`    // Path that was parsed
	ParsedAt time.Time `json:"parsed_at"` // When the parse occurred
	FileMeta FileMeta  `json:"file_meta"` // File identity metadata

	Attachments []Attachment `json:"attachments"` // Valid records, document order
	Placements  []Placement  `json:"placements"`  // Converted transforms, same order

	Warnings []Warning `json:"warnings,omitempty"` // Local parse failures, non-fatal

	Filter  FilterMode `json:"filter"`  // Filter mode that was active
	Outcome Outcome    `json:"outcome"` // Terminal condition of the run
}

// FileMeta identifies the exact file revision a report was built from.
// It doubles as the cache key input: any change to the file invalidates
// prior reports.
type FileMeta struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Outcome classifies how an extraction run ended. All three are successful
// terminations; only document read failures surface as errors.
type Outcome string

const (
	OutcomeOK Outcome = "ok" // At least one record survived validation and filtering

	// OutcomeNoAttachments means the document parsed cleanly but produced
	// zero valid records.
	OutcomeNoAttachments Outcome = "no_attachments"

	// OutcomeNoMatchesAfterFilter means valid records exist but none passed
	// the active allow-list filter. Kept distinct from OutcomeNoAttachments
	// so the user gets an accurate message.
	OutcomeNoMatchesAfterFilter Outcome = "no_matches_after_filter"
)
