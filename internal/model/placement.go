package model

// Vec3 is a position in scene units. Scene math is float32, matching the
// conventions of the engines this feeds; document parsing stays float64.
type Vec3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Euler is an orientation expressed as three sequential axis rotations.
// Angles holds one rotation per axis of Order, in radians, applied
// first-listed first. The vmdl angle convention always yields Order "YZX".
type Euler struct {
	Angles [3]float32 `json:"angles" yaml:"angles"`
	Order  string     `json:"order" yaml:"order"`
}

// Placement is an attachment converted into a spatial transform, ready to
// hand to a scene builder.
type Placement struct {
	Name       string `json:"name" yaml:"name"`
	ParentBone string `json:"parent_bone,omitempty" yaml:"parent_bone,omitempty"`
	Position   Vec3   `json:"position" yaml:"position"`
	Rotation   Euler  `json:"rotation" yaml:"rotation"`
}
