package programs

import _ "embed"

var (
	//go:embed shaders/splat.vert
	splatVertex string
	//go:embed shaders/splat.frag
	splatFragment string
)

const Splat = "splat"

// SplatLayout matches flame.Point.
var SplatLayout = Layout{
	Stride: 3 * 4,
	Attributes: []Attribute{
		{Name: "vert", Size: 2, Offset: 0},
		{Name: "colour", Size: 1, Offset: 2 * 4},
	},
}

func init() {
	NewProgram(Program{
		Name:           Splat,
		VertexShader:   splatVertex,
		FragmentShader: splatFragment,
		Layout:         SplatLayout,
	})
}
