package extract

import (
	"reflect"
	"testing"
)

const sampleDoc = `
{
	rootNode = {
		_class = "RootNode"
		children = [
			{
				_class = "Attachment"
				name = "far_00"
				relative_origin = [ 1, 2, 3 ]
				relative_angles = [ 0, 0, 0 ]
			},
			{
				_class = "Attachment"
				name = "foo"
				relative_origin = [ 4, 5, 6 ]
				relative_angles = [ 0, 45, 0 ]
			},
			{
				_class = "Attachment"
				name = "near_01"
				relative_origin = [ 7, 8, 9 ]
				relative_angles = [ 90, 0, 0 ]
			},
		]
	}
}
`

func TestAttachmentExtractor_DocumentOrder(t *testing.T) {
	extractor := NewAttachmentExtractor()

	records, warns := extractor.Extract(sampleDoc)
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got %v", warns)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []string{"far_00", "foo", "near_01"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("record %d: expected %q, got %q", i, name, records[i].Name)
		}
	}
}

func TestAttachmentExtractor_Idempotent(t *testing.T) {
	extractor := NewAttachmentExtractor()

	first, _ := extractor.Extract(sampleDoc)
	second, _ := extractor.Extract(sampleDoc)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAttachmentExtractor_MalformedSibling(t *testing.T) {
	doc := `
{
	_class = "Attachment"
	name = "broken"
	relative_origin = [ 1, bad, 3 ]
	relative_angles = [ 0, 0, 0 ]
}
{
	_class = "Attachment"
	name = "fine"
	relative_origin = [ 1, 2, 3 ]
	relative_angles = [ 0, 0, 0 ]
}
`
	extractor := NewAttachmentExtractor()
	records, warns := extractor.Extract(doc)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Valid() {
		t.Error("record with bad origin token should be incomplete")
	}
	if !records[1].Valid() {
		t.Error("sibling record should still be complete")
	}
	if len(warns) != 1 || warns[0].Attachment != "broken" {
		t.Errorf("expected one warning for %q, got %v", "broken", warns)
	}
}

func TestAttachmentExtractor_EmptyDocument(t *testing.T) {
	extractor := NewAttachmentExtractor()

	records, warns := extractor.Extract("")
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
	if len(warns) != 0 {
		t.Errorf("expected no warnings, got %d", len(warns))
	}
}
