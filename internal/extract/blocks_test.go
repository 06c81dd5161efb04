package extract

import (
	"strings"
	"testing"
)

func TestScanBlocks_FindsAttachmentBlocks(t *testing.T) {
	doc := `
{
	rootNode = {
		_class = "RootNode"
		children = [
			{
				_class = "Attachment"
				name = "gunaim_00"
				relative_origin = [ 1.0, 2.0, 3.0 ]
			},
			{
				_class = "Bone"
				name = "spine_2"
			},
			{
				_class = "Attachment"
				name = "far_01"
			},
		]
	}
}
`
	blocks := ScanBlocks(doc)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	// Order of appearance must be preserved
	if !strings.Contains(blocks[0], `name = "gunaim_00"`) {
		t.Errorf("first block should contain gunaim_00, got:\n%s", blocks[0])
	}
	if !strings.Contains(blocks[1], `name = "far_01"`) {
		t.Errorf("second block should contain far_01, got:\n%s", blocks[1])
	}
}

func TestScanBlocks_NestedBraces(t *testing.T) {
	// The closing brace of the inner block must not terminate the outer one.
	doc := `
{
	_class = "Attachment"
	name = "near_00"
	ignore_rotation = { value = false }
	relative_origin = [ 4.0, 5.0, 6.0 ]
}
`
	blocks := ScanBlocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0], "relative_origin") {
		t.Errorf("block truncated before relative_origin:\n%s", blocks[0])
	}
}

func TestScanBlocks_ClassTagMustFollowBrace(t *testing.T) {
	// The class tag appears, but not as the first assignment of a block.
	doc := `
{
	comment = "_class = \"Attachment\" mentioned in a string"
	name = "decoy"
}
`
	if blocks := ScanBlocks(doc); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}

func TestScanBlocks_WhitespaceBeforeClassTag(t *testing.T) {
	for _, doc := range []string{
		`{_class = "Attachment" name = "a"}`,
		"{\n\t_class = \"Attachment\"\n\tname = \"a\"\n}",
		"{  \r\n  _class = \"Attachment\"\r\n}",
	} {
		if blocks := ScanBlocks(doc); len(blocks) != 1 {
			t.Errorf("expected 1 block for %q, got %d", doc, len(blocks))
		}
	}
}

func TestScanBlocks_Unterminated(t *testing.T) {
	doc := `{ _class = "Attachment" name = "broken"`
	if blocks := ScanBlocks(doc); len(blocks) != 0 {
		t.Errorf("expected no blocks for unterminated input, got %d", len(blocks))
	}
}

func TestScanBlocks_EmptyDocument(t *testing.T) {
	if blocks := ScanBlocks(""); len(blocks) != 0 {
		t.Errorf("expected no blocks for empty document, got %d", len(blocks))
	}
}
