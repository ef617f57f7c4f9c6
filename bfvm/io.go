package bfvm

// Write queues p as program input. It never fails.
func (v *VM) Write(p []byte) (int, error) {
	v.Input.Push(p...)
	return len(p), nil
}

func (v *VM) WriteString(s string) (int, error) {
	v.Input.Push([]byte(s)...)
	return len(s), nil
}

// Read pops one output byte. ok is false if nothing has been produced.
func (v *VM) Read() (b byte, ok bool) {
	return v.Output.Pop()
}

func (v *VM) CanRead() bool {
	return v.Output.Len() > 0
}

func (v *VM) ReadAll() []byte {
	return v.Output.PopN(-1)
}

// ReadN drains up to n output bytes, or all of them if n is negative.
func (v *VM) ReadN(n int) []byte {
	return v.Output.PopN(n)
}
