package compiler

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/khevencolino/brainfun/internal/debug"
	"github.com/khevencolino/brainfun/internal/lexer"
	"github.com/khevencolino/brainfun/internal/registry"
)

// LimiteRepeticao é o maior argumento numérico aceito por FORWARD, BACKWARD, ADD e SUB
const LimiteRepeticao = math.MaxInt32

// Gerador percorre os tokens uma única vez emitindo brainfuck
type Gerador struct {
	tokens       []lexer.Token
	arquivo      string
	fonte        string
	posicaoAtual int
	lacosAbertos int
	registro     *registry.RegistroPalavrasChave
	saida        strings.Builder
}

// NovoGerador cria um novo gerador de código
func NovoGerador(tokens []lexer.Token, arquivo, fonte string) *Gerador {
	return &Gerador{
		tokens:   tokens,
		arquivo:  arquivo,
		fonte:    fonte,
		registro: registry.RegistroGlobal,
	}
}

// Compilar transforma os tokens em uma sequência de instruções brainfuck.
// O primeiro erro interrompe a compilação.
func Compilar(tokens []lexer.Token, arquivo, fonte string) (string, error) {
	return NovoGerador(tokens, arquivo, fonte).Gerar()
}

// Gerar executa a compilação
func (g *Gerador) Gerar() (string, error) {
	for !g.tokenAtual().EFim() {
		token := g.tokenAtual()
		if !token.EPalavraChave() {
			return "", g.erroInesperado(token, lexer.KEYWORD)
		}

		palavra, ok := g.registro.ObterPalavraChave(token.Value)
		if !ok {
			return "", lexer.NovoErroPalavraChaveInvalida(token, g.linha(token))
		}

		if err := g.emitir(palavra, token); err != nil {
			return "", err
		}

		// LOOP termina com ':', os demais comandos com ';'
		anterior := g.tokenAtual()
		g.proximoToken()

		if g.tokenAtual().Type != lexer.SEMICOLON && anterior.Type != lexer.COLON {
			return "", g.erroInesperado(g.tokenAtual(), lexer.SEMICOLON)
		}

		if anterior.Type != lexer.COLON {
			g.proximoToken()
		}
	}

	if g.lacosAbertos > 0 {
		debug.Logger().Debug("laços sem END no fim da entrada",
			"arquivo", g.arquivo, "quantidade", g.lacosAbertos)
	}

	return g.saida.String(), nil
}

// emitir processa uma palavra-chave e seu argumento, se houver
func (g *Gerador) emitir(palavra *registry.PalavraChave, token lexer.Token) error {
	argumento := token
	if palavra.Argumento != registry.ARGUMENTO_NENHUM {
		g.proximoToken()
		argumento = g.tokenAtual()
		if !palavra.Argumento.Aceita(argumento.Type) {
			return g.erroInesperado(argumento, palavra.Argumento.TiposAceitos()...)
		}
	}

	if palavra.Laco == registry.LACO_FECHA && g.lacosAbertos < 1 {
		return g.erroInesperado(token, lexer.KEYWORD)
	}

	quantidade := 1
	if palavra.Repete() {
		var err error
		quantidade, err = g.quantidade(argumento)
		if err != nil {
			return err
		}
	}

	g.saida.WriteString(strings.Repeat(string(palavra.Simbolo), quantidade))

	switch palavra.Laco {
	case registry.LACO_ABRE:
		g.lacosAbertos++
	case registry.LACO_FECHA:
		g.lacosAbertos--
	}

	return nil
}

// quantidade converte o argumento em número de repetições
func (g *Gerador) quantidade(argumento lexer.Token) (int, error) {
	if argumento.Type == lexer.STRING {
		caractere, _ := utf8.DecodeRuneInString(argumento.Value)
		if caractere == utf8.RuneError {
			return 0, nil
		}
		return int(caractere), nil
	}

	valor, err := strconv.Atoi(argumento.Value)
	if err != nil || valor > LimiteRepeticao {
		return 0, lexer.NovoErroNumeroForaDoLimite(argumento, LimiteRepeticao, g.linha(argumento))
	}
	return valor, nil
}

// proximoToken avança para o próximo token
func (g *Gerador) proximoToken() {
	g.posicaoAtual++
}

// tokenAtual retorna o token atual, ou um EOF sintetizado no fim do último token
func (g *Gerador) tokenAtual() lexer.Token {
	if g.posicaoAtual < len(g.tokens) {
		return g.tokens[g.posicaoAtual]
	}

	posicao := lexer.NovaPosicao(0, 0, g.arquivo)
	if len(g.tokens) > 0 {
		posicao = g.tokens[len(g.tokens)-1].Position.Fim
	}
	return lexer.NovoToken(lexer.EOF, "", lexer.NovoIntervaloPontual(posicao, g.arquivo))
}

// erroInesperado cria um UnexpectedTokenError para o token
func (g *Gerador) erroInesperado(obtido lexer.Token, esperados ...lexer.TokenType) error {
	return lexer.NovoErroTokenInesperado(obtido, g.linha(obtido), esperados...)
}

// linha retorna a linha do código fonte onde o token começa
func (g *Gerador) linha(token lexer.Token) string {
	return lexer.LinhaDoCodigo(g.fonte, token.Position.Inicio.Linha)
}
