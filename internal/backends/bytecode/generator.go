package bytecode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/khevencolino/brainfun/internal/debug"
)

// TamanhoFitaPadrao é o número de células da fita quando nada é configurado
const TamanhoFitaPadrao = 30000

type BytecodeBackend struct {
	instructions []Instruction
	tamanhoFita  int
	entrada      *bufio.Reader
	saida        io.Writer
}

func NewBytecodeBackend(tamanhoFita int, entrada *bufio.Reader, saida io.Writer) *BytecodeBackend {
	if tamanhoFita <= 0 {
		tamanhoFita = TamanhoFitaPadrao
	}
	return &BytecodeBackend{
		instructions: make([]Instruction, 0),
		tamanhoFita:  tamanhoFita,
		entrada:      entrada,
		saida:        saida,
	}
}

func (b *BytecodeBackend) GetName() string { return "Bytecode + VM" }

func (b *BytecodeBackend) Compile(programa string) error {
	debug.Printf("🤖 Gerando bytecode para %d símbolos...\n", len(programa))

	instructions, err := Gerar(programa)
	if err != nil {
		return err
	}
	b.instructions = instructions

	return b.executarVM()
}

// Gerar converte o programa brainfuck em instruções, agrupando repetições
// e resolvendo o destino de cada salto. Caracteres fora do alfabeto são ignorados.
func Gerar(programa string) ([]Instruction, error) {
	var instructions []Instruction
	var abertos []int

	for i := 0; i < len(programa); i++ {
		op, ok := opcodeDoSimbolo(programa[i])
		if !ok {
			continue
		}

		switch {
		case op.agrupavel():
			inicio := i
			for i+1 < len(programa) && programa[i+1] == programa[inicio] {
				i++
			}
			instructions = append(instructions, Instruction{OpCode: op, Operand: int64(i - inicio + 1), Offset: inicio})

		case op == OP_JZ:
			abertos = append(abertos, len(instructions))
			instructions = append(instructions, Instruction{OpCode: op, Offset: i})

		case op == OP_JNZ:
			if len(abertos) == 0 {
				return nil, fmt.Errorf("']' sem '[' correspondente na posição %d", i)
			}
			abertura := abertos[len(abertos)-1]
			abertos = abertos[:len(abertos)-1]

			instructions[abertura].Operand = int64(len(instructions))
			instructions = append(instructions, Instruction{OpCode: op, Operand: int64(abertura), Offset: i})

		default:
			instructions = append(instructions, Instruction{OpCode: op, Offset: i})
		}
	}

	if len(abertos) > 0 {
		return nil, fmt.Errorf("%d laço(s) sem ']' correspondente, o primeiro na posição %d",
			len(abertos), instructions[abertos[0]].Offset)
	}

	instructions = append(instructions, Instruction{OpCode: OP_HALT, Offset: len(programa)})
	return instructions, nil
}

func (b *BytecodeBackend) executarVM() error {
	vm := NewVM(b.tamanhoFita, b.entrada, b.saida)
	return vm.Execute(b.instructions)
}
