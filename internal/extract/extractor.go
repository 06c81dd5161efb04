package extract

import "github.com/FellOffFuji/vmdlpoints/internal/model"

// AttachmentExtractor extracts attachment records from vmdl documents
type AttachmentExtractor struct{}

// NewAttachmentExtractor creates a new attachment extractor
func NewAttachmentExtractor() *AttachmentExtractor {
	return &AttachmentExtractor{}
}

// Extract scans the whole document and returns one record per attachment
// block, in document order, plus any local parse warnings. Records are not
// validated here; incomplete ones come back as-is. The extractor holds no
// state between calls, so parsing the same document twice yields identical
// results.
func (e *AttachmentExtractor) Extract(doc string) ([]model.Attachment, []model.Warning) {
	var records []model.Attachment
	var warns []model.Warning

	for _, block := range ScanBlocks(doc) {
		att, blockWarns := ExtractFields(block)
		records = append(records, att)
		warns = append(warns, blockWarns...)
	}

	return records, warns
}
