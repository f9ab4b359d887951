package programs

import _ "embed"

//go:embed shaders/fade.frag
var fadeFragment string

const Fade = "fade"

func init() {
	NewProgram(Program{
		Name:           Fade,
		VertexShader:   quadVertexShader,
		FragmentShader: fadeFragment,
		Layout:         quadLayout,
	})
}
