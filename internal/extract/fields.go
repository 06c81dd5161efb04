package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

var (
	nameRe = regexp.MustCompile(`name\s+=\s+"(.*?)"`)
	boneRe = regexp.MustCompile(`parent_bone\s+=\s+"(.*?)"`)

	// vectorRe matches array assignments for the origin/angles field family.
	// Keys are case-insensitive and array bodies may span newlines.
	vectorRe = regexp.MustCompile(`(?is)(relative_origin|relative_angles|origin|angles)\s+=\s*\[(.*?)\]`)
)

// ExtractFields pulls the scalar and vector fields out of one raw block body.
// The returned record may be incomplete; validity is the caller's concern.
//
// Keys containing "origin" and keys containing "angles" each populate a
// single logical field, so relative_origin aliases origin. When a block
// carries both, the last assignment in scan order wins.
func ExtractFields(block string) (model.Attachment, []model.Warning) {
	var att model.Attachment
	var warns []model.Warning

	if m := nameRe.FindStringSubmatch(block); m != nil {
		att.Name = m[1]
	}
	if m := boneRe.FindStringSubmatch(block); m != nil {
		att.ParentBone = m[1]
	}

	for _, m := range vectorRe.FindAllStringSubmatch(block, -1) {
		key := strings.ToLower(m[1])
		coords, err := parseCoords(m[2])
		if err != nil {
			// Local failure: the field stays unset, the block keeps parsing.
			warns = append(warns, model.Warning{
				Attachment: nameOrUnknown(att.Name),
				Field:      key,
				Message:    err.Error(),
			})
			continue
		}
		switch {
		case strings.Contains(key, "origin"):
			att.Origin = coords
		case strings.Contains(key, "angles"):
			att.Angles = coords
		}
	}

	return att, warns
}

// parseCoords converts a comma-separated array body into floats. Empty
// tokens are discarded; any non-numeric token fails the whole field.
func parseCoords(raw string) ([]float64, error) {
	var coords []float64
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert coordinate %q", tok)
		}
		coords = append(coords, f)
	}
	return coords, nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return "UNKNOWN"
	}
	return name
}
