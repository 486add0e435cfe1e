package bytecode

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/khevencolino/brainfun/internal/debug"
)

type VM struct {
	fita     []byte
	ponteiro int
	pc       int // program counter
	entrada  *bufio.Reader
	saida    *bufio.Writer
}

// NewVM cria a máquina; entrada é usada diretamente, sem novo buffer,
// para não consumir bytes de quem compartilha o mesmo leitor
func NewVM(tamanhoFita int, entrada *bufio.Reader, saida io.Writer) *VM {
	return &VM{
		fita:    make([]byte, tamanhoFita),
		entrada: entrada,
		saida:   bufio.NewWriter(saida),
	}
}

func (vm *VM) Execute(instructions []Instruction) error {
	debug.Printf("📊 Bytecode gerado (%d instruções)\n", len(instructions))
	if debug.Enabled {
		for i, instr := range instructions {
			debug.Printf("  %03d: %s %d\n", i, instr.OpCode, instr.Operand)
		}
	}

	debug.Printf("🏃 Executando...\n")
	defer vm.saida.Flush()

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		switch instr.OpCode {
		case OP_RIGHT:
			vm.ponteiro += int(instr.Operand)
			if vm.ponteiro >= len(vm.fita) {
				return fmt.Errorf("ponteiro passou do fim da fita (%d células) na posição %d", len(vm.fita), instr.Offset)
			}

		case OP_LEFT:
			vm.ponteiro -= int(instr.Operand)
			if vm.ponteiro < 0 {
				return fmt.Errorf("ponteiro antes do início da fita na posição %d", instr.Offset)
			}

		case OP_ADD:
			vm.fita[vm.ponteiro] += byte(instr.Operand % 256)

		case OP_SUB:
			vm.fita[vm.ponteiro] -= byte(instr.Operand % 256)

		case OP_OUT:
			if err := vm.saida.WriteByte(vm.fita[vm.ponteiro]); err != nil {
				return err
			}

		case OP_IN:
			if err := vm.saida.Flush(); err != nil {
				return err
			}
			valor, err := vm.entrada.ReadByte()
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if err == nil {
				vm.fita[vm.ponteiro] = valor
			}

		case OP_JZ:
			if vm.fita[vm.ponteiro] == 0 {
				vm.pc = int(instr.Operand)
			}

		case OP_JNZ:
			if vm.fita[vm.ponteiro] != 0 {
				vm.pc = int(instr.Operand)
			}

		case OP_HALT:
			debug.Printf("✅ Execução concluída!\n")
			return vm.saida.Flush()

		default:
			return fmt.Errorf("opcode desconhecido: %d", instr.OpCode)
		}

		vm.pc++
	}

	return nil
}

// Celula retorna o valor da célula sob o ponteiro
func (vm *VM) Celula() byte {
	return vm.fita[vm.ponteiro]
}
