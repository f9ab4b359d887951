package programs

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stewi1014/glflame/flame"
)

func TestRegisteredPrograms(t *testing.T) {
	for _, name := range []string{Fade, Splat, Present} {
		p, err := GetProgram(name)
		if err != nil {
			t.Fatalf("GetProgram(%q): %v", name, err)
		}
		if !strings.HasPrefix(p.VertexShader, "#version") || !strings.HasPrefix(p.FragmentShader, "#version") {
			t.Errorf("%v: shader sources not embedded", name)
		}
		for _, a := range p.Layout.Attributes {
			if !strings.Contains(p.VertexShader, "in "+typeOf(a.Size)+" "+a.Name+";") {
				t.Errorf("%v: vertex shader does not declare attribute %v", name, a.Name)
			}
		}
	}

	if NumPrograms() != 3 {
		t.Errorf("NumPrograms() = %v", NumPrograms())
	}

	if _, err := GetProgram("julia"); !errors.Is(err, ErrNoProgram) {
		t.Errorf("unknown program error = %v", err)
	}
}

func typeOf(size int32) string {
	if size == 1 {
		return "float"
	}
	return "vec" + string(rune('0'+size))
}

func TestSplatLayoutMatchesPoint(t *testing.T) {
	var p flame.Point
	if SplatLayout.Stride != int32(unsafe.Sizeof(p)) {
		t.Errorf("stride %v, point is %v bytes", SplatLayout.Stride, unsafe.Sizeof(p))
	}
	if SplatLayout.Attributes[0].Offset != int(unsafe.Offsetof(p.X)) {
		t.Errorf("vert offset %v", SplatLayout.Attributes[0].Offset)
	}
	if SplatLayout.Attributes[1].Offset != int(unsafe.Offsetof(p.Colour)) {
		t.Errorf("colour offset %v", SplatLayout.Attributes[1].Offset)
	}
}

func TestUniformNamesDeclared(t *testing.T) {
	tests := []struct {
		program  string
		uniforms interface{}
		want     []string
	}{
		{Fade, FadeUniforms{}, []string{"amount"}},
		{Splat, &SplatUniforms{}, []string{"colours", "pointSize", "alpha"}},
		{Present, PresentUniforms{}, []string{"camera", "accum"}},
	}

	for _, tt := range tests {
		names := UniformNames(tt.uniforms)
		if diff := cmp.Diff(tt.want, names); diff != "" {
			t.Errorf("%v uniforms (-want +got):\n%s", tt.program, diff)
		}

		p, _ := GetProgram(tt.program)
		for _, name := range names {
			if !strings.Contains(p.VertexShader+p.FragmentShader, " "+name) {
				t.Errorf("%v does not declare uniform %v", tt.program, name)
			}
		}
	}
}

func TestCamera(t *testing.T) {
	tests := []struct {
		width, height int
		want          mgl32.Mat4
	}{
		{800, 800, mgl32.Ident4()},
		{1600, 800, mgl32.Scale3D(0.5, 1, 1)},
		{800, 1600, mgl32.Scale3D(1, 0.5, 1)},
		{0, 600, mgl32.Ident4()},
	}

	for _, tt := range tests {
		if got := Camera(tt.width, tt.height); got != tt.want {
			t.Errorf("Camera(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestShaderError(t *testing.T) {
	err := error(&ShaderError{
		Program: Splat,
		Stage:   "vertex",
		Log:     "0:3(1): error: syntax error\n\x00",
		Err:     ErrCompile,
	})

	if !errors.Is(err, ErrCompile) || errors.Is(err, ErrLink) {
		t.Errorf("errors.Is mismatch for %v", err)
	}

	want := "splat vertex shader failed to compile: 0:3(1): error: syntax error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var shaderErr *ShaderError
	if !errors.As(err, &shaderErr) || shaderErr.Stage != "vertex" {
		t.Errorf("errors.As failed for %v", err)
	}
}
