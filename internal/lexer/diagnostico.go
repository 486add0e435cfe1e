package lexer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// TipoErro identifica a categoria de um diagnóstico
type TipoErro int

const (
	// Erros léxicos
	UNESCAPED_STRING  TipoErro = iota // String sem aspas de fechamento
	ILLEGAL_CHARACTER                 // Caractere fora do alfabeto da linguagem
	STRING_MAX_LENGTH                 // String com mais de um caractere

	// Erros sintáticos
	UNEXPECTED_TOKEN // Token diferente do esperado pela gramática
	INVALID_KEYWORD  // Palavra-chave desconhecida
	NUMBER_OVERFLOW  // Número grande demais para ser emitido
)

// String retorna o nome do tipo de erro
func (t TipoErro) String() string {
	switch t {
	case UNESCAPED_STRING:
		return "UnescapedStringError"
	case ILLEGAL_CHARACTER:
		return "IllegalCharacterError"
	case STRING_MAX_LENGTH:
		return "StringMaxLengthError"
	case UNEXPECTED_TOKEN:
		return "UnexpectedTokenError"
	case INVALID_KEYWORD:
		return "InvalidKeywordError"
	case NUMBER_OVERFLOW:
		return "NumberOverflowError"
	default:
		return "Error"
	}
}

// ELexico verifica se o erro pertence à análise léxica
func (t TipoErro) ELexico() bool {
	return t <= STRING_MAX_LENGTH
}

// Diagnostico é um erro posicionado, com o trecho do código para exibição.
// Produzir um diagnóstico interrompe a etapa atual.
type Diagnostico struct {
	Tipo      TipoErro    // Categoria do erro
	Posicao   Intervalo   // Trecho apontado pelo erro
	Descricao string      // Mensagem legível
	Codigo    string      // Linha do código onde o erro começa
	Esperados []TokenType // Tipos esperados (apenas UNEXPECTED_TOKEN)
	Obtido    *Token      // Token encontrado (apenas erros sintáticos)
}

// Error implementa a interface error
func (d *Diagnostico) Error() string {
	return fmt.Sprintf("%s: %q", d.Tipo, d.Descricao)
}

// Renderizar escreve a linha do código, as setas sob o trecho e a mensagem
func (d *Diagnostico) Renderizar(w io.Writer) error {
	var builder strings.Builder
	builder.WriteString(d.Codigo)
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", max(d.Posicao.Inicio.Coluna, 0)))
	builder.WriteString(strings.Repeat("^", d.larguraSetas()))
	builder.WriteString("\n\n")
	builder.WriteString(d.Error())
	builder.WriteString("\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

// Imprimir renderiza o diagnóstico na saída padrão
func (d *Diagnostico) Imprimir() {
	_ = d.Renderizar(os.Stdout)
}

// larguraSetas calcula quantos '^' cobrem o trecho
func (d *Diagnostico) larguraSetas() int {
	var largura int
	if d.Posicao.MultiLinha() {
		largura = utf8.RuneCountInString(d.Codigo) - d.Posicao.Inicio.Coluna + 1
	} else {
		largura = d.Posicao.Fim.Coluna - d.Posicao.Inicio.Coluna + 1
	}
	return max(largura, 1)
}

// NovoErroStringNaoFechada cria um UnescapedStringError
func NovoErroStringNaoFechada(posicao Intervalo, codigo string) *Diagnostico {
	return &Diagnostico{
		Tipo:      UNESCAPED_STRING,
		Posicao:   posicao,
		Descricao: "a string nunca foi fechada",
		Codigo:    codigo,
	}
}

// NovoErroCaractereIlegal cria um IllegalCharacterError
func NovoErroCaractereIlegal(posicao Intervalo, caractere rune, codigo string) *Diagnostico {
	return &Diagnostico{
		Tipo:      ILLEGAL_CHARACTER,
		Posicao:   posicao,
		Descricao: fmt.Sprintf("caractere inesperado: %q", string(caractere)),
		Codigo:    codigo,
	}
}

// NovoErroTamanhoString cria um StringMaxLengthError
func NovoErroTamanhoString(posicao Intervalo, codigo string) *Diagnostico {
	return &Diagnostico{
		Tipo:      STRING_MAX_LENGTH,
		Posicao:   posicao,
		Descricao: "strings têm no máximo 1 caractere",
		Codigo:    codigo,
	}
}

// NovoErroTokenInesperado cria um UnexpectedTokenError
func NovoErroTokenInesperado(obtido Token, codigo string, esperados ...TokenType) *Diagnostico {
	nomes := make([]string, len(esperados))
	for i, esperado := range esperados {
		nomes[i] = esperado.String()
	}

	return &Diagnostico{
		Tipo:    UNEXPECTED_TOKEN,
		Posicao: obtido.Position,
		Descricao: fmt.Sprintf("esperado %q, mas obteve %q",
			strings.Join(nomes, " ou "), obtido.String()),
		Codigo:    codigo,
		Esperados: esperados,
		Obtido:    &obtido,
	}
}

// NovoErroPalavraChaveInvalida cria um InvalidKeywordError
func NovoErroPalavraChaveInvalida(obtido Token, codigo string) *Diagnostico {
	return &Diagnostico{
		Tipo:      INVALID_KEYWORD,
		Posicao:   obtido.Position,
		Descricao: fmt.Sprintf("%q não é uma palavra-chave válida", obtido.Value),
		Codigo:    codigo,
		Obtido:    &obtido,
	}
}

// NovoErroNumeroForaDoLimite cria um NumberOverflowError
func NovoErroNumeroForaDoLimite(obtido Token, limite int, codigo string) *Diagnostico {
	return &Diagnostico{
		Tipo:      NUMBER_OVERFLOW,
		Posicao:   obtido.Position,
		Descricao: fmt.Sprintf("o número %s excede o limite de %d repetições, usado para não esgotar a memória", obtido.Value, limite),
		Codigo:    codigo,
		Obtido:    &obtido,
	}
}
