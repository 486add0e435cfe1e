package registry

import (
	"sort"

	"github.com/khevencolino/brainfun/internal/lexer"
)

// TipoArgumento define qual token deve seguir a palavra-chave
type TipoArgumento int

const (
	ARGUMENTO_NENHUM      TipoArgumento = iota // Nenhum argumento
	ARGUMENTO_NUMERO                           // Apenas número
	ARGUMENTO_QUANTIDADE                       // Número ou string de um caractere
	ARGUMENTO_DOIS_PONTOS                      // ':' que também termina o comando
)

// TiposAceitos retorna os tipos de token aceitos como argumento
func (t TipoArgumento) TiposAceitos() []lexer.TokenType {
	switch t {
	case ARGUMENTO_NUMERO:
		return []lexer.TokenType{lexer.NUMBER}
	case ARGUMENTO_QUANTIDADE:
		return []lexer.TokenType{lexer.NUMBER, lexer.STRING}
	case ARGUMENTO_DOIS_PONTOS:
		return []lexer.TokenType{lexer.COLON}
	default:
		return nil
	}
}

// Aceita verifica se o tipo de token é um argumento válido
func (t TipoArgumento) Aceita(tipo lexer.TokenType) bool {
	for _, aceito := range t.TiposAceitos() {
		if aceito == tipo {
			return true
		}
	}
	return false
}

// EfeitoLaco define como a palavra-chave altera o contador de laços abertos
type EfeitoLaco int

const (
	LACO_NENHUM EfeitoLaco = iota
	LACO_ABRE              // Incrementa o contador
	LACO_FECHA             // Exige um laço aberto e decrementa o contador
)

// PalavraChave define a regra de emissão de uma palavra-chave
type PalavraChave struct {
	Nome      string
	Simbolo   byte // Instrução brainfuck emitida
	Argumento TipoArgumento
	Laco      EfeitoLaco
	Descricao string
}

// Repete informa se o símbolo é repetido de acordo com o argumento
func (p *PalavraChave) Repete() bool {
	return p.Argumento == ARGUMENTO_NUMERO || p.Argumento == ARGUMENTO_QUANTIDADE
}

// RegistroPalavrasChave mantém as palavras-chave da linguagem
type RegistroPalavrasChave struct {
	palavras map[string]*PalavraChave
}

// NovoRegistroPalavrasChave cria um registro com as palavras-chave padrão
func NovoRegistroPalavrasChave() *RegistroPalavrasChave {
	registro := &RegistroPalavrasChave{
		palavras: make(map[string]*PalavraChave),
	}

	registro.registrarPalavrasBasicas()

	return registro
}

var palavrasPadroes = []PalavraChave{
	{Nome: "FORWARD", Simbolo: '>', Argumento: ARGUMENTO_NUMERO, Descricao: "Move o ponteiro n células para a direita"},
	{Nome: "BACKWARD", Simbolo: '<', Argumento: ARGUMENTO_NUMERO, Descricao: "Move o ponteiro n células para a esquerda"},
	{Nome: "ADD", Simbolo: '+', Argumento: ARGUMENTO_QUANTIDADE, Descricao: "Soma n (ou o código do caractere) à célula atual"},
	{Nome: "SUB", Simbolo: '-', Argumento: ARGUMENTO_QUANTIDADE, Descricao: "Subtrai n (ou o código do caractere) da célula atual"},
	{Nome: "OUT", Simbolo: '.', Descricao: "Escreve a célula atual na saída"},
	{Nome: "STORE", Simbolo: ',', Descricao: "Lê um byte da entrada para a célula atual"},
	{Nome: "LOOP", Simbolo: '[', Argumento: ARGUMENTO_DOIS_PONTOS, Laco: LACO_ABRE, Descricao: "Abre um laço"},
	{Nome: "END", Simbolo: ']', Laco: LACO_FECHA, Descricao: "Fecha o último laço aberto"},
}

// registrarPalavrasBasicas copia as palavras-chave padrão para o registro
func (r *RegistroPalavrasChave) registrarPalavrasBasicas() {
	for _, palavra := range palavrasPadroes {
		r.Registrar(palavra)
	}
}

// Registrar adiciona ou substitui uma palavra-chave
func (r *RegistroPalavrasChave) Registrar(palavra PalavraChave) {
	r.palavras[palavra.Nome] = &palavra
}

// ObterPalavraChave retorna a regra de uma palavra-chave (diferencia maiúsculas)
func (r *RegistroPalavrasChave) ObterPalavraChave(nome string) (*PalavraChave, bool) {
	palavra, existe := r.palavras[nome]
	return palavra, existe
}

// EhPalavraChave verifica se um nome é uma palavra-chave
func (r *RegistroPalavrasChave) EhPalavraChave(nome string) bool {
	_, existe := r.palavras[nome]
	return existe
}

// ListarPalavrasChave retorna os nomes registrados em ordem alfabética
func (r *RegistroPalavrasChave) ListarPalavrasChave() []string {
	nomes := make([]string, 0, len(r.palavras))
	for nome := range r.palavras {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)
	return nomes
}

// Instância global do registro
var RegistroGlobal = NovoRegistroPalavrasChave()
