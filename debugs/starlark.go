package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int8:
		return starlark.MakeInt(int(v))
	case uint8:
		return starlark.MakeUint(uint(v))

	case []int:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = starlark.MakeInt(e)
		}
		return starlark.NewList(elems)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
