package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	// Tipos de tokens
	KEYWORD   TokenType = iota // Palavra-chave (FORWARD, LOOP, ...)
	NUMBER                     // Números decimais
	STRING                     // Literal de um caractere entre aspas
	COLON                      // Dois pontos (:)
	SEMICOLON                  // Ponto e vírgula (;)
	NEWLINE                    // Quebra de linha, nunca é produzido pelo lexer
	EOF                        // Fim da entrada
)

// String retorna o nome do tipo de token, usado nas mensagens de erro
func (t TokenType) String() string {
	switch t {
	case KEYWORD:
		return "KeywordToken"
	case NUMBER:
		return "NumberToken"
	case STRING:
		return "StringToken"
	case COLON:
		return "ColonToken"
	case SEMICOLON:
		return "SemicolonToken"
	case NEWLINE:
		return "NewLineToken"
	case EOF:
		return "EOFToken"
	default:
		return "UNKNOWN"
	}
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Valor do token (vazio para COLON, SEMICOLON e EOF)
	Position Intervalo // Trecho do código coberto pelo token
}

// String retorna uma representação em string do token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("<%s>", t.Type)
	}
	return fmt.Sprintf("<%s: %s>", t.Type, t.Value)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Intervalo) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}

// EPalavraChave verifica se o token é uma palavra-chave
func (t Token) EPalavraChave() bool {
	return t.Type == KEYWORD
}

// EFim verifica se o token marca o fim da entrada
func (t Token) EFim() bool {
	return t.Type == EOF
}
