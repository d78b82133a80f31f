package querystring

import (
	"github.com/go-andiamo/urit"
	"strconv"
)

// pathParams supplies positional values to a urit path template
type pathParams []any

var _ urit.PathVars = pathParams{}

func (p pathParams) GetPositional(position int) (string, bool) {
	if position >= 0 && position < len(p) {
		if e, ok := entryOf(p[position]); ok {
			return e.value, true
		}
	}
	return "", false
}

func (p pathParams) GetNamed(name string, position int) (string, bool) {
	return "", false
}

func (p pathParams) GetNamedFirst(name string) (string, bool) {
	return "", false
}

func (p pathParams) GetNamedLast(name string) (string, bool) {
	return "", false
}

// Get resolves the first int (or numeric string) ident as a position
func (p pathParams) Get(idents ...interface{}) (string, bool) {
	for _, ident := range idents {
		switch it := ident.(type) {
		case int:
			return p.GetPositional(it)
		case string:
			if pos, err := strconv.Atoi(it); err == nil {
				return p.GetPositional(pos)
			}
		}
	}
	return "", false
}

// GetAll returns nil - positional values carry no var names
func (p pathParams) GetAll() []urit.PathVar {
	return nil
}

func (p pathParams) Len() int {
	return len(p)
}

// Clear is a no-op, the values are fixed when the template is applied
func (p pathParams) Clear() {}

func (p pathParams) VarsType() urit.PathVarsType {
	return urit.Positions
}

func (p pathParams) AddNamedValue(name string, val interface{}) error {
	return newArgumentError("AddNamedValue", "name", reasonPositional)
}

func (p pathParams) AddPositionalValue(val interface{}) error {
	return newArgumentError("AddPositionalValue", "val", reasonFixed)
}
