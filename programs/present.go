package programs

import _ "embed"

var (
	//go:embed shaders/present.vert
	presentVertex string
	//go:embed shaders/present.frag
	presentFragment string
)

const Present = "present"

func init() {
	NewProgram(Program{
		Name:           Present,
		VertexShader:   presentVertex,
		FragmentShader: presentFragment,
		Layout:         quadLayout,
	})
}
