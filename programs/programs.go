package programs

import (
	_ "embed"
	"errors"
	"fmt"
)

var ErrNoProgram = errors.New("no such program")

//go:embed shaders/quad.vert
var quadVertexShader string

// QuadVertices is a full viewport triangle strip.
var QuadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

var quadLayout = Layout{
	Stride: 2 * 4,
	Attributes: []Attribute{
		{Name: "vert", Size: 2, Offset: 0},
	},
}

func NumPrograms() int {
	return len(programs)
}

func Programs() []Program {
	return programs
}

func GetProgram(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w: %q", ErrNoProgram, name)
}

func NewProgram(p Program) {
	programs = append(programs, p)
}

var programs []Program

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Layout         Layout
}

// Layout describes how the program reads its vertex buffer.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// Attribute is a float vector attribute at a byte offset into each vertex.
type Attribute struct {
	Name   string
	Size   int32
	Offset int
}
