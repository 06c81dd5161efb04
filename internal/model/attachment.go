package model

// Attachment represents one attachment record parsed from a vmdl document.
// Origin and Angles stay in document units: position components as written,
// angles in degrees.
type Attachment struct {
	Name       string    `json:"name"`                  // Attachment name, e.g. "gunaim_00"
	ParentBone string    `json:"parent_bone,omitempty"` // Optional bone the attachment hangs off
	Origin     []float64 `json:"origin,omitempty"`      // x, y, z
	Angles     []float64 `json:"angles,omitempty"`      // pitch, yaw, roll in degrees
}

// Valid reports whether the record is complete: a name plus exactly three
// components each of origin and angles. Incomplete records are dropped, not
// treated as errors.
func (a Attachment) Valid() bool {
	return a.Name != "" && len(a.Origin) == 3 && len(a.Angles) == 3
}

// FilterMode selects which attachments survive extraction
type FilterMode string

const (
	FilterAll          FilterMode = "all"           // Keep every attachment found
	FilterWeaponPoints FilterMode = "weapon-points" // Keep only far_xx, near_xx, gunaim_xx
)

// Warning records a local, non-fatal parse failure (e.g. a vector field
// whose tokens did not convert to numbers)
type Warning struct {
	Attachment string `json:"attachment"`      // Name of the record, or "UNKNOWN" if not yet parsed
	Field      string `json:"field,omitempty"` // Offending key as written in the document
	Message    string `json:"message"`
}
