package framing

import (
	"fmt"
	"runtime"
	"strings"
)

// Framed is implemented by errors that know where the offending call was made
type Framed interface {
	Frame() *Frame
}

// NewFrame captures the caller of the function that calls NewFrame
//
// skip adds further levels, e.g. a skip of 1 reports the caller's caller
//
//go:noinline
func NewFrame(skip int) (f *Frame) {
	pcs := make([]uintptr, 1)
	if n := runtime.Callers(3+skip, pcs); n > 0 {
		f = &Frame{
			Pc: pcs[0],
		}
		f.resolve()
	}
	return f
}

// Frame is a source location within a calling package
type Frame struct {
	File    string
	Line    int
	Name    string
	Package string
	Pc      uintptr
}

// String returns the frame as "file:line"
func (f *Frame) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

func (f *Frame) resolve() {
	fn := runtime.FuncForPC(f.Pc)
	if fn == nil {
		return
	}
	f.File, f.Line = fn.FileLine(f.Pc - 1)
	name := fn.Name()
	pkg := ""
	if last := strings.LastIndex(name, "/"); last >= 0 {
		pkg = name[:last+1]
		name = name[last+1:]
	}
	if dot := strings.Index(name, "."); dot >= 0 {
		pkg += name[:dot]
		name = name[dot+1:]
	}
	f.Name, f.Package = name, pkg
}
