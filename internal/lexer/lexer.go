package lexer

import (
	"fmt"
	"strings"
)

// Lexer representa o analisador léxico.
// O cursor anda um caractere por vez; entre duas linhas ele entrega uma
// quebra de linha sintética ('\n') na coluna len(linha).
type Lexer struct {
	linhas  [][]rune // Código fonte dividido em linhas
	arquivo string   // Nome do arquivo, usado nas posições
	linha   int      // Linha atual (começa em 0)
	coluna  int      // Coluna atual na linha (começa em 0)
	atual   rune     // Caractere sob o cursor
	fim     bool     // Indica que a entrada acabou
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string, arquivo string) *Lexer {
	partes := strings.Split(entrada, "\n")
	linhas := make([][]rune, len(partes))
	for i, parte := range partes {
		linhas[i] = []rune(strings.TrimSuffix(parte, "\r"))
	}

	lexer := &Lexer{
		linhas:  linhas,
		arquivo: arquivo,
	}
	lexer.carregar()
	return lexer
}

// Tokenizar converte a entrada em uma lista de tokens terminada por EOF.
// O primeiro erro interrompe a análise e nenhum token é devolvido.
func Tokenizar(entrada string, arquivo string) ([]Token, error) {
	return NovoLexer(entrada, arquivo).Tokenizar()
}

// Tokenizar converte a entrada em uma lista de tokens
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for !l.fim {
		switch {
		case l.atual == '\n':
			l.avancar()

		case l.atual == '"':
			token, err := l.lerString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case ehDigito(l.atual):
			tokens = append(tokens, l.lerNumero())

		case l.atual == ' ' || l.atual == '\t':
			l.avancar()

		case ehLetra(l.atual) || l.atual == '_':
			tokens = append(tokens, l.lerPalavraChave())

		case l.atual == ':':
			tokens = append(tokens, NovoToken(COLON, "", l.intervaloAtual()))
			l.avancar()

		case l.atual == ';':
			tokens = append(tokens, NovoToken(SEMICOLON, "", l.intervaloAtual()))
			l.avancar()

		default:
			return nil, NovoErroCaractereIlegal(l.intervaloAtual(), l.atual, l.textoLinha(l.linha))
		}
	}

	return append(tokens, l.tokenFim(tokens)), nil
}

// lerPalavraChave consome letras, dígitos, '_' e '.' a partir de uma letra
func (l *Lexer) lerPalavraChave() Token {
	var valor strings.Builder
	inicio := l.obterPosicaoAtual()
	fim := inicio

	for !l.fim && ehCaractereNome(l.atual) {
		fim = l.obterPosicaoAtual()
		valor.WriteRune(l.atual)
		l.avancar()
	}

	return NovoToken(KEYWORD, valor.String(), NovoIntervalo(inicio, fim, l.arquivo))
}

// lerNumero consome uma sequência de dígitos decimais
func (l *Lexer) lerNumero() Token {
	var valor strings.Builder
	inicio := l.obterPosicaoAtual()
	fim := inicio

	for !l.fim && ehDigito(l.atual) {
		fim = l.obterPosicaoAtual()
		valor.WriteRune(l.atual)
		l.avancar()
	}

	return NovoToken(NUMBER, valor.String(), NovoIntervalo(inicio, fim, l.arquivo))
}

// lerString consome um literal entre aspas com no máximo um caractere
func (l *Lexer) lerString() (Token, error) {
	inicio := l.obterPosicaoAtual()
	codigo := l.textoLinha(inicio.Linha)
	l.avancar() // consome a aspa de abertura

	var valor []rune
	for !l.fim && ehCaractereString(l.atual) {
		valor = append(valor, l.atual)
		l.avancar()
	}

	if !l.fim && l.atual == '"' {
		intervalo := NovoIntervalo(inicio, l.obterPosicaoAtual(), l.arquivo)
		if len(valor) > 1 {
			return Token{}, NovoErroTamanhoString(intervalo, codigo)
		}
		l.avancar() // consome a aspa de fechamento
		return NovoToken(STRING, string(valor), intervalo), nil
	}

	if l.fim || l.atual == '\n' {
		return Token{}, NovoErroStringNaoFechada(NovoIntervalo(inicio, l.obterPosicaoAtual(), l.arquivo), codigo)
	}

	return Token{}, NovoErroCaractereIlegal(l.intervaloAtual(), l.atual, codigo)
}

// tokenFim cria o token EOF na posição final do último token
func (l *Lexer) tokenFim(tokens []Token) Token {
	posicao := NovaPosicao(0, 0, l.arquivo)
	if len(tokens) > 0 {
		posicao = tokens[len(tokens)-1].Position.Fim
	}
	return NovoToken(EOF, "", NovoIntervaloPontual(posicao, l.arquivo))
}

// avancar move o cursor um caractere para frente
func (l *Lexer) avancar() {
	if l.fim {
		return
	}

	if l.atual == '\n' {
		l.linha++
		l.coluna = 0
	} else {
		l.coluna++
	}
	l.carregar()
}

// carregar atualiza o caractere atual a partir de linha e coluna
func (l *Lexer) carregar() {
	linha := l.linhas[l.linha]

	switch {
	case l.coluna < len(linha):
		l.atual = linha[l.coluna]
	case l.linha < len(l.linhas)-1:
		l.atual = '\n'
	default:
		l.atual = 0
		l.fim = true
	}
}

// obterPosicaoAtual retorna a posição atual no código fonte
func (l *Lexer) obterPosicaoAtual() Posicao {
	return NovaPosicao(l.coluna, l.linha, l.arquivo)
}

// intervaloAtual retorna um intervalo de um caractere na posição atual
func (l *Lexer) intervaloAtual() Intervalo {
	return NovoIntervaloPontual(l.obterPosicaoAtual(), l.arquivo)
}

// textoLinha retorna o texto de uma linha do código
func (l *Lexer) textoLinha(linha int) string {
	if linha < 0 || linha >= len(l.linhas) {
		return ""
	}
	return string(l.linhas[linha])
}

func ehLetra(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func ehDigito(c rune) bool {
	return c >= '0' && c <= '9'
}

// ehCaractereNome verifica se o caractere pode continuar uma palavra-chave
func ehCaractereNome(c rune) bool {
	return ehLetra(c) || ehDigito(c) || c == '_' || c == '.'
}

// ehCaractereString verifica se o caractere é aceito dentro de uma string
func ehCaractereString(c rune) bool {
	return ehCaractereNome(c) || c == ' '
}

// ImprimirTokens imprime todos os tokens de forma formatada
func ImprimirTokens(tokens []Token) {
	fmt.Printf("%-15s %-15s %-20s\n", "TIPO", "VALOR", "POSIÇÃO")
	fmt.Println(strings.Repeat("-", 55))

	for _, token := range tokens {
		if token.Type != EOF {
			fmt.Printf("%-15s %-15s %-20s\n", token.Type, token.Value, token.Position)
		}
	}
}

// LinhaDoCodigo retorna a linha de índice linha (começando em 0) de um código
func LinhaDoCodigo(codigo string, linha int) string {
	linhas := strings.Split(codigo, "\n")
	if linha < 0 || linha >= len(linhas) {
		return ""
	}
	return strings.TrimSuffix(linhas[linha], "\r")
}
