package bfvm

type OpCode uint8

const (
	OpNop OpCode = iota
	OpLeft
	OpRight
	OpInc
	OpDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

func Decode(c byte) OpCode {
	switch c {
	case '<':
		return OpLeft
	case '>':
		return OpRight
	case '+':
		return OpInc
	case '-':
		return OpDec
	case '.':
		return OpOutput
	case ',':
		return OpInput
	case '[':
		return OpLoopStart
	case ']':
		return OpLoopEnd
	}
	return OpNop
}

// Compile decodes every byte of source. Positions in the result match byte offsets in source.
func Compile(source string) []OpCode {
	code := make([]OpCode, len(source))
	for i := 0; i < len(source); i++ {
		code[i] = Decode(source[i])
	}
	return code
}

func (o OpCode) String() string {
	switch o {
	case OpLeft:
		return "<"
	case OpRight:
		return ">"
	case OpInc:
		return "+"
	case OpDec:
		return "-"
	case OpOutput:
		return "."
	case OpInput:
		return ","
	case OpLoopStart:
		return "["
	case OpLoopEnd:
		return "]"
	}
	return "nop"
}
