package bytecode

type OpCode byte

const (
	OP_RIGHT OpCode = iota // RIGHT n (move o ponteiro n células)
	OP_LEFT                // LEFT n
	OP_ADD                 // ADD n (soma n à célula, com estouro)
	OP_SUB                 // SUB n
	OP_OUT                 // OUT
	OP_IN                  // IN
	OP_JZ                  // JZ endereço (pula se a célula é zero)
	OP_JNZ                 // JNZ endereço (pula se a célula não é zero)
	OP_HALT                // HALT
)

type Instruction struct {
	OpCode  OpCode
	Operand int64
	Offset  int // posição do símbolo no programa, para debug
}

func (op OpCode) String() string {
	switch op {
	case OP_RIGHT:
		return "RIGHT"
	case OP_LEFT:
		return "LEFT"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_OUT:
		return "OUT"
	case OP_IN:
		return "IN"
	case OP_JZ:
		return "JZ"
	case OP_JNZ:
		return "JNZ"
	case OP_HALT:
		return "HALT"
	default:
		return "UNKNOWN"
	}
}

// opcodeDoSimbolo mapeia um símbolo brainfuck para seu opcode
func opcodeDoSimbolo(simbolo byte) (OpCode, bool) {
	switch simbolo {
	case '>':
		return OP_RIGHT, true
	case '<':
		return OP_LEFT, true
	case '+':
		return OP_ADD, true
	case '-':
		return OP_SUB, true
	case '.':
		return OP_OUT, true
	case ',':
		return OP_IN, true
	case '[':
		return OP_JZ, true
	case ']':
		return OP_JNZ, true
	default:
		return 0, false
	}
}

// agrupavel informa se repetições seguidas viram uma só instrução
func (op OpCode) agrupavel() bool {
	return op == OP_RIGHT || op == OP_LEFT || op == OP_ADD || op == OP_SUB
}
