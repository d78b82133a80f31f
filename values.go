package querystring

import (
	"fmt"
	"github.com/go-andiamo/gopt"
	"github.com/shopspring/decimal"
	"reflect"
	"strconv"
)

// entryOf converts a value passed to Set or Append into an entry
//
// ok is false when the value denotes "nothing" - nil, any nil pointer, an empty optional or an invalid decimal.NullDecimal
//
// Non-nil pointers are dereferenced unless the pointer itself is a fmt.Stringer
func entryOf(value any) (e entry, ok bool) {
	switch vt := value.(type) {
	case nil:
		return flagEntry, false
	case *string:
		if vt == nil {
			return flagEntry, false
		}
		return valueEntry(*vt), true
	case *gopt.Optional[string]:
		if vt == nil || !vt.IsPresent() {
			return flagEntry, false
		}
		return valueEntry(vt.OrElse("")), true
	case decimal.NullDecimal:
		if !vt.Valid {
			return flagEntry, false
		}
		return valueEntry(vt.Decimal.String()), true
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return flagEntry, false
		} else if _, ok := value.(fmt.Stringer); !ok {
			return entryOf(rv.Elem().Interface())
		}
	}
	return valueEntry(formatValue(value)), true
}

// formatValue renders a value in its canonical string form
func formatValue(value any) string {
	switch vt := value.(type) {
	case string:
		return vt
	case int:
		return strconv.Itoa(vt)
	case int8:
		return strconv.FormatInt(int64(vt), 10)
	case int16:
		return strconv.FormatInt(int64(vt), 10)
	case int32:
		return strconv.FormatInt(int64(vt), 10)
	case int64:
		return strconv.FormatInt(vt, 10)
	case uint:
		return strconv.FormatUint(uint64(vt), 10)
	case uint8:
		return strconv.FormatUint(uint64(vt), 10)
	case uint16:
		return strconv.FormatUint(uint64(vt), 10)
	case uint32:
		return strconv.FormatUint(uint64(vt), 10)
	case uint64:
		return strconv.FormatUint(vt, 10)
	case float32:
		return strconv.FormatFloat(float64(vt), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(vt, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(vt)
	case decimal.Decimal:
		return vt.String()
	case []byte:
		return string(vt)
	case fmt.Stringer:
		return vt.String()
	}
	return fmt.Sprintf("%v", value)
}
