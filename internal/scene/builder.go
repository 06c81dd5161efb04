package scene

import (
	"fmt"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

// Default marker properties for attachment points, sized so the arrows stay
// visible at model scale.
const (
	DefaultCollection = "VMDL_Attachments"
	MarkerSingleArrow = "single_arrow"
	DisplaySize       = 80.0
)

// Builder is the scene-construction collaborator: it turns accepted
// placements into named point objects grouped inside a collection.
type Builder interface {
	CreatePoint(collection string, p model.Placement) error
}

// Point is a named, oriented point object in a scene document
type Point struct {
	Name        string      `yaml:"name" json:"name"`
	ParentBone  string      `yaml:"parent_bone,omitempty" json:"parent_bone,omitempty"`
	Position    model.Vec3  `yaml:"position" json:"position"`
	Rotation    model.Euler `yaml:"rotation" json:"rotation"`
	Marker      string      `yaml:"marker" json:"marker"`
	DisplaySize float32     `yaml:"display_size" json:"display_size"`
}

// Collection groups points under a single named container
type Collection struct {
	Name   string  `yaml:"name" json:"name"`
	Points []Point `yaml:"points" json:"points"`
}

// Document is a serializable scene description: collections of attachment
// points that downstream tooling instantiates as empties/locators.
type Document struct {
	Collections []*Collection `yaml:"collections" json:"collections"`
}

// DocumentBuilder implements Builder by recording points into a Document
type DocumentBuilder struct {
	doc Document
}

// NewDocumentBuilder creates an empty document builder
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// CreatePoint places p as an arrow marker inside the named collection. An
// existing collection with the same name is reused, never recreated, so
// repeated imports accumulate into one container.
func (b *DocumentBuilder) CreatePoint(collection string, p model.Placement) error {
	if p.Name == "" {
		return fmt.Errorf("point has no name")
	}
	col := b.ensureCollection(collection)
	col.Points = append(col.Points, Point{
		Name:        p.Name,
		ParentBone:  p.ParentBone,
		Position:    p.Position,
		Rotation:    p.Rotation,
		Marker:      MarkerSingleArrow,
		DisplaySize: DisplaySize,
	})
	return nil
}

// Document returns the accumulated scene document
func (b *DocumentBuilder) Document() *Document {
	return &b.doc
}

func (b *DocumentBuilder) ensureCollection(name string) *Collection {
	if name == "" {
		name = DefaultCollection
	}
	for _, col := range b.doc.Collections {
		if col.Name == name {
			return col
		}
	}
	col := &Collection{Name: name}
	b.doc.Collections = append(b.doc.Collections, col)
	return col
}
