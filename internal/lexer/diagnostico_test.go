package lexer

import (
	"bytes"
	"testing"
)

func TestDiagnostico_Renderizar(t *testing.T) {
	tests := []struct {
		nome string
		diag *Diagnostico
		want string
	}{
		{
			nome: "caractere único",
			diag: NovoErroCaractereIlegal(
				NovoIntervaloPontual(NovaPosicao(4, 0, ""), ""), '@', "OUT @;"),
			want: "OUT @;\n    ^\n\nIllegalCharacterError: \"caractere inesperado: \\\"@\\\"\"\n",
		},
		{
			nome: "intervalo na mesma linha",
			diag: NovoErroTamanhoString(
				NovoIntervalo(NovaPosicao(4, 0, ""), NovaPosicao(7, 0, ""), ""), `ADD "AB";`),
			want: "ADD \"AB\";\n    ^^^^\n\nStringMaxLengthError: \"strings têm no máximo 1 caractere\"\n",
		},
		{
			nome: "intervalo entre linhas",
			diag: NovoErroStringNaoFechada(
				NovoIntervalo(NovaPosicao(4, 0, ""), NovaPosicao(0, 1, ""), ""), `ADD "A`),
			want: "ADD \"A\n    ^^^\n\nUnescapedStringError: \"a string nunca foi fechada\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.diag.Renderizar(&buf); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("esperado\n%q\nobteve\n%q", tt.want, buf.String())
			}
		})
	}
}

func TestDiagnostico_TokenInesperado(t *testing.T) {
	obtido := NovoToken(KEYWORD, "OUT", NovoIntervalo(NovaPosicao(4, 0, ""), NovaPosicao(6, 0, ""), ""))
	diag := NovoErroTokenInesperado(obtido, "OUT OUT;", SEMICOLON)

	if diag.Tipo != UNEXPECTED_TOKEN {
		t.Fatalf("esperado UnexpectedTokenError, obteve %v", diag.Tipo)
	}
	if diag.Posicao != obtido.Position {
		t.Errorf("esperado posição do token, obteve %v", diag.Posicao)
	}
	want := `UnexpectedTokenError: "esperado \"SemicolonToken\", mas obteve \"<KeywordToken: OUT>\""`
	if diag.Error() != want {
		t.Errorf("esperado %s, obteve %s", want, diag.Error())
	}
	if diag.Tipo.ELexico() {
		t.Errorf("UnexpectedTokenError não deveria ser léxico")
	}
}

func TestDiagnostico_VariosEsperados(t *testing.T) {
	obtido := NovoToken(COLON, "", NovoIntervaloPontual(NovaPosicao(4, 0, ""), ""))
	diag := NovoErroTokenInesperado(obtido, "ADD :;", NUMBER, STRING)

	want := `UnexpectedTokenError: "esperado \"NumberToken ou StringToken\", mas obteve \"<ColonToken>\""`
	if diag.Error() != want {
		t.Errorf("esperado %s, obteve %s", want, diag.Error())
	}
	if len(diag.Esperados) != 2 {
		t.Errorf("esperado 2 tipos, obteve %v", diag.Esperados)
	}
}

func TestIntervalo(t *testing.T) {
	inicio := NovaPosicao(2, 3, "a.bfun")
	pontual := NovoIntervaloPontual(inicio, "a.bfun")

	if pontual.Fim != inicio {
		t.Errorf("intervalo pontual deveria terminar no início, obteve %v", pontual.Fim)
	}
	if pontual.MultiLinha() {
		t.Errorf("intervalo pontual não é multilinha")
	}
	if got := inicio.String(); got != "a.bfun:4:3" {
		t.Errorf("esperado a.bfun:4:3, obteve %s", got)
	}

	multi := NovoIntervalo(inicio, NovaPosicao(0, 4, "a.bfun"), "a.bfun")
	if !multi.MultiLinha() {
		t.Errorf("esperado intervalo multilinha")
	}
}
