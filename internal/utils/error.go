package utils

import (
	"strings"
)

// CompilerError representa um erro do compilador fora do código fonte
// (leitura, escrita, configuração)
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Arquivo  string // Arquivo envolvido, se houver
	Causa    error  // Erro original
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Arquivo != "" {
		builder.WriteString(" '")
		builder.WriteString(e.Arquivo)
		builder.WriteString("'")
	}
	if e.Causa != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Causa.Error())
	}
	return builder.String()
}

// Unwrap permite usar errors.Is/As com a causa
func (e *CompilerError) Unwrap() error {
	return e.Causa
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem, arquivo string, causa error) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Arquivo:  arquivo,
		Causa:    causa,
	}
}
