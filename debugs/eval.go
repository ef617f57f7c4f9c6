package debugs

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates a Starlark expression with globals in scope and converts the result to a Go value.
func Eval(expr string, globals map[string]any) (any, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "<eval>", expr, toStarlarkDict(globals))
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", expr, err)
	}
	return fromStarlarkValue(value)
}

func fromStarlarkValue(v starlark.Value) (any, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(v), nil

	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return v.String(), nil
		}
		return i, nil

	case starlark.Float:
		return float64(v), nil

	case starlark.String:
		return string(v), nil

	case starlark.Bytes:
		return []byte(v), nil

	case *starlark.List:
		ret := make([]any, 0, v.Len())
		for i := range v.Len() {
			elem, err := fromStarlarkValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case starlark.Tuple:
		ret := make([]any, 0, len(v))
		for _, e := range v {
			elem, err := fromStarlarkValue(e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				key = item[0].String()
			}
			value, err := fromStarlarkValue(item[1])
			if err != nil {
				return nil, err
			}
			ret[key] = value
		}
		return ret, nil

	}

	return nil, fmt.Errorf("unsupported starlark value: %s", v.Type())
}
