package core

// Color is a linear RGBA colour.
type Color struct {
	R, G, B, A float32
}

// ColorFromArray converts an RGBA quadruple as stored in config files.
func ColorFromArray(c [4]float32) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
