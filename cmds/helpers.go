package cmds

// Flag holds a flag argument and whether it was given.
type Flag[T any] struct {
	Value T
	IsSet bool
}

// Or returns the flag value if it was given, otherwise fallback.
func (f *Flag[T]) Or(fallback T) T {
	if f.IsSet {
		return f.Value
	}
	return fallback
}

// Var defines name taking one argument, and name+"." resetting it.
func Var[T any](name string, desc string) *Flag[T] {
	flag := new(Flag[T])
	Define(name, Func(func(v T) {
		flag.Value = v
		flag.IsSet = true
	}).Desc(desc))
	Define(name+".", Func(func() {
		*flag = Flag[T]{}
	}).Desc("unset "+name))
	return flag
}

// Switch defines name turning the switch on, and "!"+name turning it off.
func Switch(name string, desc string) *bool {
	var on bool
	Define(name, Func(func() {
		on = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		on = false
	}).Desc("disable "+name))
	return &on
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string, desc string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}).Desc(desc+", repeatable"))
	return &values
}
