package bfvm

type Interrupt struct {
	Suspend bool
}

// InterruptSuspend is yielded by Run when a read finds no input.
var InterruptSuspend = &Interrupt{
	Suspend: true,
}
