package scene

import (
	"testing"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

func placement(name string) model.Placement {
	return model.Placement{
		Name:     name,
		Position: model.Vec3{X: 1, Y: 2, Z: 3},
		Rotation: model.Euler{Order: "YZX"},
	}
}

func TestDocumentBuilder_CreatePoint(t *testing.T) {
	b := NewDocumentBuilder()

	if err := b.CreatePoint(DefaultCollection, placement("gunaim_00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := b.Document()
	if len(doc.Collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(doc.Collections))
	}
	col := doc.Collections[0]
	if col.Name != "VMDL_Attachments" {
		t.Errorf("unexpected collection name %q", col.Name)
	}
	if len(col.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(col.Points))
	}

	p := col.Points[0]
	if p.Name != "gunaim_00" {
		t.Errorf("unexpected point name %q", p.Name)
	}
	if p.Marker != MarkerSingleArrow {
		t.Errorf("expected arrow marker, got %q", p.Marker)
	}
	if p.DisplaySize != 80.0 {
		t.Errorf("expected display size 80, got %v", p.DisplaySize)
	}
}

func TestDocumentBuilder_ReusesCollection(t *testing.T) {
	b := NewDocumentBuilder()

	_ = b.CreatePoint("Points", placement("far_00"))
	_ = b.CreatePoint("Points", placement("far_01"))
	_ = b.CreatePoint("Other", placement("near_00"))

	doc := b.Document()
	if len(doc.Collections) != 2 {
		t.Fatalf("same-named collection must be reused, got %d collections", len(doc.Collections))
	}
	if len(doc.Collections[0].Points) != 2 {
		t.Errorf("expected 2 points in first collection, got %d", len(doc.Collections[0].Points))
	}
}

func TestDocumentBuilder_EmptyCollectionName(t *testing.T) {
	b := NewDocumentBuilder()

	_ = b.CreatePoint("", placement("near_02"))

	doc := b.Document()
	if len(doc.Collections) != 1 || doc.Collections[0].Name != DefaultCollection {
		t.Errorf("empty collection name should fall back to %q", DefaultCollection)
	}
}

func TestDocumentBuilder_RejectsUnnamedPoint(t *testing.T) {
	b := NewDocumentBuilder()

	if err := b.CreatePoint(DefaultCollection, model.Placement{}); err == nil {
		t.Error("expected error for unnamed point")
	}
}
