package lexer

import "fmt"

// Posicao identifica um caractere no código fonte
type Posicao struct {
	Coluna  int    // Coluna na linha (começa em 0)
	Linha   int    // Linha no código (começa em 0)
	Arquivo string // Nome do arquivo, pode ser vazio
}

// String retorna uma representação em string da posição
func (p Posicao) String() string {
	if p.Arquivo != "" {
		return fmt.Sprintf("%s:%d:%d", p.Arquivo, p.Linha+1, p.Coluna+1)
	}
	return fmt.Sprintf("linha %d, coluna %d", p.Linha+1, p.Coluna+1)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(coluna, linha int, arquivo string) Posicao {
	return Posicao{
		Coluna:  coluna,
		Linha:   linha,
		Arquivo: arquivo,
	}
}

// Intervalo representa um trecho do código, do Inicio ao Fim (inclusivo)
type Intervalo struct {
	Inicio  Posicao
	Fim     Posicao
	Arquivo string
}

// NovoIntervalo cria um intervalo entre duas posições
func NovoIntervalo(inicio, fim Posicao, arquivo string) Intervalo {
	return Intervalo{
		Inicio:  inicio,
		Fim:     fim,
		Arquivo: arquivo,
	}
}

// NovoIntervaloPontual cria um intervalo de largura zero (Fim igual ao Inicio)
func NovoIntervaloPontual(inicio Posicao, arquivo string) Intervalo {
	return NovoIntervalo(inicio, inicio, arquivo)
}

// MultiLinha informa se o intervalo atravessa mais de uma linha
func (i Intervalo) MultiLinha() bool {
	return i.Inicio.Linha != i.Fim.Linha
}

// String retorna uma representação em string do intervalo
func (i Intervalo) String() string {
	if i.Inicio == i.Fim {
		return i.Inicio.String()
	}
	return fmt.Sprintf("%s até %s", i.Inicio, i.Fim)
}
