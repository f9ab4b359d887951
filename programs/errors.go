package programs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCompile = errors.New("failed to compile")
	ErrLink    = errors.New("failed to link")
)

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Program string
	Stage   string // "vertex", "fragment" or "program"
	Log     string
	Err     error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%v %v shader %v: %v", e.Program, e.Stage, e.Err, strings.TrimSpace(strings.TrimRight(e.Log, "\x00")))
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}
