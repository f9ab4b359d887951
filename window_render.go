package main

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/programs"
)

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "notification"
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "marker"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_POP_GROUP:
		typeStr = "popGroup"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		typeStr = "pushGroup"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	entry := logrus.WithFields(logrus.Fields{
		"source":   sourceStr,
		"severity": severityStr,
		"type":     typeStr,
	})
	if gltype == gl.DEBUG_TYPE_ERROR {
		entry.Error(message)
	} else {
		entry.Debug(message)
	}
}

// glProgram is a linked program with its own vertex array over one buffer.
type glProgram struct {
	name             string
	id               uint32
	vao              uint32
	layout           programs.Layout
	uniformLocations map[string]int32
}

func loadProgram(program programs.Program, uniforms interface{}) (*glProgram, error) {
	vertexShader, err := compileShader(program.Name, "vertex", program.VertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.Name, "fragment", program.FragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	p := &glProgram{
		name:   program.Name,
		id:     gl.CreateProgram(),
		layout: program.Layout,
	}
	gl.AttachShader(p.id, vertexShader)
	gl.AttachShader(p.id, fragmentShader)
	gl.BindFragDataLocation(p.id, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(p.id)

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(p.id, l, nil, gl.Str(log))
		gl.DeleteProgram(p.id)
		return nil, &programs.ShaderError{
			Program: program.Name,
			Stage:   "program",
			Log:     log,
			Err:     programs.ErrLink,
		}
	}

	p.uniformLocations = make(map[string]int32)
	for _, name := range programs.UniformNames(uniforms) {
		p.uniformLocations[name] = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		if p.uniformLocations[name] < 0 {
			logrus.WithField("program", program.Name).Debugf("uniform %v is not active", name)
		}
	}

	return p, nil
}

// bindBuffer creates the program's vertex array over vbo.
func (p *glProgram) bindBuffer(vbo uint32) {
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	for _, a := range p.layout.Attributes {
		loc := gl.GetAttribLocation(p.id, gl.Str(a.Name+"\x00"))
		if loc < 0 {
			logrus.WithField("program", p.name).Debugf("attribute %v is not active", a.Name)
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), a.Size, gl.FLOAT, false, p.layout.Stride, uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
}

// use makes p current with the given uniform struct, passed by pointer.
func (p *glProgram) use(uniforms interface{}) {
	gl.UseProgram(p.id)
	p.loadUniforms(uniforms)
	gl.BindVertexArray(p.vao)
}

func (p *glProgram) delete() {
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.id)
}

func (p *glProgram) loadUniforms(uniforms interface{}) {
	v := reflect.ValueOf(uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc, ok := p.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if !ok || loc < 0 {
			continue
		}

		count := int32(1)

	SwitchElem:
		switch f.Type() {
		// Natural Array types
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, count, (*float32)(ptr))
			continue
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, count, (*float32)(ptr))
			continue
		case reflect.TypeOf(mgl32.Vec4{}):
			gl.Uniform4fv(loc, count, (*float32)(ptr))
			continue
		case reflect.TypeOf(mgl64.Vec2{}):
			gl.Uniform2dv(loc, count, (*float64)(ptr))
			continue
		case reflect.TypeOf(mgl32.Mat4{}):
			gl.UniformMatrix4fv(loc, count, false, (*float32)(ptr))
			continue
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, count, (*int32)(ptr))
			continue
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, count, (*float32)(ptr))
			continue
		}

		if f.Kind() == reflect.Array {
			count = int32(f.Len())
			f = f.Index(0)
			goto SwitchElem
		}

		logrus.Errorf("unsupported uniform type %v", f.Type())
	}
}

func compileShader(program, stage, source string, shaderType uint32) (uint32, error) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &programs.ShaderError{
			Program: program,
			Stage:   stage,
			Log:     log,
			Err:     programs.ErrCompile,
		}
	}

	return shader, nil
}

func glInfo() string {
	return fmt.Sprintf("%v (%v)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
}
