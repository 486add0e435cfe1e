package compiler

import (
	"fmt"
	"io"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/khevencolino/brainfun/internal/lexer"
)

// VisualizadorArvore desenha a estrutura de comandos e laços do programa
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte tokens já validados em uma árvore: cada comando é um
// nó, e os comandos dentro de um LOOP são filhos dele
func (v *VisualizadorArvore) CriarArvore(tokens []lexer.Token) *tree.Tree {
	raiz := tree.NewTree(tree.NodeString("programa"))
	pilha := []*tree.Tree{raiz}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if !token.EPalavraChave() {
			continue
		}

		atual := pilha[len(pilha)-1]
		rotulo := token.Value
		if i+1 < len(tokens) {
			switch proximo := tokens[i+1]; proximo.Type {
			case lexer.NUMBER:
				rotulo = fmt.Sprintf("%s %s", token.Value, proximo.Value)
			case lexer.STRING:
				rotulo = fmt.Sprintf("%s %q", token.Value, proximo.Value)
			}
		}

		switch token.Value {
		case "LOOP":
			pilha = append(pilha, atual.AddChild(tree.NodeString(rotulo)))
		case "END":
			if len(pilha) > 1 {
				pilha = pilha[:len(pilha)-1]
			}
		default:
			atual.AddChild(tree.NodeString(rotulo))
		}
	}

	return raiz
}

// ImprimirArvore escreve a árvore desenhada em w
func (v *VisualizadorArvore) ImprimirArvore(w io.Writer, tokens []lexer.Token) {
	fmt.Fprintln(w, "=== Árvore do Programa ===")
	fmt.Fprintln(w, v.CriarArvore(tokens))
	fmt.Fprintln(w)
}
