package programs

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform structs are uploaded field by field; the uniform tag names the
// GLSL uniform.

type FadeUniforms struct {
	Amount float32 `uniform:"amount"`
}

type SplatUniforms struct {
	Colours   [3]mgl32.Vec3 `uniform:"colours"`
	PointSize float32       `uniform:"pointSize"`
	Alpha     float32       `uniform:"alpha"`
}

type PresentUniforms struct {
	Camera mgl32.Mat4 `uniform:"camera"`
	Accum  int32      `uniform:"accum"`
}

// UniformNames lists the uniform tags of a uniform struct in field order.
func UniformNames(uniforms interface{}) []string {
	t := reflect.TypeOf(uniforms)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := t.Field(i).Tag.Get("uniform"); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Camera fits a square texture inside a width by height viewport,
// keeping it square and centred.
func Camera(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}

	if width > height {
		return mgl32.Scale3D(float32(height)/float32(width), 1, 1)
	}
	return mgl32.Scale3D(1, float32(width)/float32(height), 1)
}
