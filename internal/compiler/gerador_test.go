package compiler

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/khevencolino/brainfun/internal/lexer"
)

func compilarFonte(t *testing.T, fonte string) (string, error) {
	t.Helper()
	tokens, err := lexer.Tokenizar(fonte, "teste.bfun")
	if err != nil {
		t.Fatalf("erro léxico inesperado: %v", err)
	}
	return Compilar(tokens, "teste.bfun", fonte)
}

func diagnosticoDe(t *testing.T, err error) *lexer.Diagnostico {
	t.Helper()
	var diag *lexer.Diagnostico
	if !errors.As(err, &diag) {
		t.Fatalf("esperado *lexer.Diagnostico, obteve %T (%v)", err, err)
	}
	return diag
}

func TestCompilar_Emissao(t *testing.T) {
	tests := []struct {
		fonte string
		want  string
	}{
		{"", ""},
		{"FORWARD 3;", ">>>"},
		{"BACKWARD 2;", "<<"},
		{"FORWARD 0;", ""},
		{"ADD 3;", "+++"},
		{"SUB 4;", "----"},
		{`ADD "A";`, strings.Repeat("+", 65)},
		{`SUB " ";`, strings.Repeat("-", 32)},
		{`ADD "";`, ""},
		{"OUT;", "."},
		{"STORE;", ","},
		{"LOOP: OUT; END;", "[.]"},
		{"LOOP:\n  LOOP:\n    SUB 1;\n  END;\nEND;", "[[-]]"},
		{"ADD 2; LOOP: FORWARD 1; ADD 1; BACKWARD 1; SUB 1; END; FORWARD 1; OUT;", "++[>+<-]>."},
		{"STORE ; OUT\n;", ",."},
	}

	for _, tt := range tests {
		got, err := compilarFonte(t, tt.fonte)
		if err != nil {
			t.Errorf("%q: erro inesperado: %v", tt.fonte, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: esperado %q, obteve %q", tt.fonte, tt.want, got)
		}
	}
}

func TestCompilar_RepeticaoExata(t *testing.T) {
	for _, n := range []int{1, 7, 10, 255, 1000} {
		numero := "00" + strconv.Itoa(n)
		got, err := compilarFonte(t, "FORWARD "+numero+"; BACKWARD "+numero+";")
		if err != nil {
			t.Fatalf("%d: erro inesperado: %v", n, err)
		}
		want := strings.Repeat(">", n) + strings.Repeat("<", n)
		if got != want {
			t.Errorf("%d: esperado %d símbolos de cada, obteve %q", n, n, got)
		}
	}
}

func TestCompilar_SaidaSoTemAlfabetoBrainfuck(t *testing.T) {
	got, err := compilarFonte(t, `STORE; LOOP: ADD "z"; SUB 1; FORWARD 2; BACKWARD 2; OUT; END;`)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if strings.Trim(got, "><+-.,[]") != "" {
		t.Errorf("saída contém caracteres fora do alfabeto: %q", got)
	}
}

func TestCompilar_LoopSemAberturaAindaCompila(t *testing.T) {
	got, err := compilarFonte(t, "LOOP: OUT;")
	if err != nil {
		t.Fatalf("laços abertos no fim não são erro: %v", err)
	}
	if got != "[." {
		t.Errorf("esperado \"[.\", obteve %q", got)
	}
}

func TestCompilar_Erros(t *testing.T) {
	tests := []struct {
		nome      string
		fonte     string
		tipo      lexer.TipoErro
		esperados []lexer.TokenType
		linha     int
		coluna    int
	}{
		{"ponto e vírgula ausente", "OUT OUT;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.SEMICOLON}, 0, 4},
		{"ponto e vírgula ausente no fim", "OUT;\nOUT", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.SEMICOLON}, 1, 2},
		{"END sem LOOP", "OUT;\nEND;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.KEYWORD}, 1, 0},
		{"END a mais", "LOOP: END; END;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.KEYWORD}, 0, 11},
		{"FORWARD sem número", `FORWARD "A";`, lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.NUMBER}, 0, 8},
		{"ADD sem argumento", "ADD;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.NUMBER, lexer.STRING}, 0, 3},
		{"LOOP sem dois pontos", "LOOP; END;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.COLON}, 0, 4},
		{"começa com número", "3;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.KEYWORD}, 0, 0},
		{"ponto e vírgula depois de LOOP:", "LOOP:; END;", lexer.UNEXPECTED_TOKEN, []lexer.TokenType{lexer.KEYWORD}, 0, 5},
		{"palavra-chave inválida", "OUT;\n  JUMP 3;", lexer.INVALID_KEYWORD, nil, 1, 2},
		{"minúsculas", "out;", lexer.INVALID_KEYWORD, nil, 0, 0},
		{"número grande demais", "ADD 99999999999;", lexer.NUMBER_OVERFLOW, nil, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			_, err := compilarFonte(t, tt.fonte)
			diag := diagnosticoDe(t, err)

			if diag.Tipo != tt.tipo {
				t.Fatalf("esperado %v, obteve %v", tt.tipo, diag.Tipo)
			}
			if len(diag.Esperados) != len(tt.esperados) {
				t.Fatalf("esperado %v, obteve %v", tt.esperados, diag.Esperados)
			}
			for i := range tt.esperados {
				if diag.Esperados[i] != tt.esperados[i] {
					t.Errorf("esperado %v, obteve %v", tt.esperados, diag.Esperados)
				}
			}
			if diag.Posicao.Inicio.Linha != tt.linha || diag.Posicao.Inicio.Coluna != tt.coluna {
				t.Errorf("esperado linha %d coluna %d, obteve %v", tt.linha, tt.coluna, diag.Posicao)
			}
			if diag.Codigo != lexer.LinhaDoCodigo(tt.fonte, tt.linha) {
				t.Errorf("código inesperado %q", diag.Codigo)
			}
		})
	}
}

func TestCompilar_PontoEVirgulaAusenteApontaSegundoOUT(t *testing.T) {
	tokens, err := lexer.Tokenizar("OUT OUT;", "")
	if err != nil {
		t.Fatalf("erro léxico inesperado: %v", err)
	}

	_, err = Compilar(tokens, "", "OUT OUT;")
	diag := diagnosticoDe(t, err)

	if diag.Posicao != tokens[1].Position {
		t.Errorf("esperado posição %v, obteve %v", tokens[1].Position, diag.Posicao)
	}
	if diag.Obtido == nil || diag.Obtido.Value != "OUT" {
		t.Errorf("esperado token OUT, obteve %v", diag.Obtido)
	}
}

func TestCompilar_SemTokenFim(t *testing.T) {
	tokens, err := lexer.Tokenizar("OUT; STORE;", "")
	if err != nil {
		t.Fatalf("erro léxico inesperado: %v", err)
	}

	got, err := Compilar(tokens[:len(tokens)-1], "", "OUT; STORE;")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got != ".," {
		t.Errorf("esperado \".,\", obteve %q", got)
	}

	got, err = Compilar(nil, "", "")
	if err != nil || got != "" {
		t.Errorf("esperado saída vazia sem erro, obteve %q, %v", got, err)
	}
}

func TestCompilar_FimSintetizadoIgualAoDoLexer(t *testing.T) {
	fonte := "OUT;\nOUT"
	tokens, err := lexer.Tokenizar(fonte, "")
	if err != nil {
		t.Fatalf("erro léxico inesperado: %v", err)
	}

	_, comFim := Compilar(tokens, "", fonte)
	_, semFim := Compilar(tokens[:len(tokens)-1], "", fonte)

	a, b := diagnosticoDe(t, comFim), diagnosticoDe(t, semFim)
	if a.Posicao != b.Posicao {
		t.Errorf("posições diferentes: %v e %v", a.Posicao, b.Posicao)
	}
	if b.Posicao.Inicio.Linha != 1 || b.Posicao.Inicio.Coluna != 2 {
		t.Errorf("esperado linha 1 coluna 2, obteve %v", b.Posicao)
	}
}

func TestCompilar_NumeroForaDoLimiteExplicaMotivo(t *testing.T) {
	_, err := compilarFonte(t, "FORWARD 3000000000;")
	diag := diagnosticoDe(t, err)

	if diag.Tipo != lexer.NUMBER_OVERFLOW {
		t.Fatalf("esperado NumberOverflowError, obteve %v", diag.Tipo)
	}
	if !strings.Contains(diag.Descricao, "memória") {
		t.Errorf("descrição deveria citar o limite de memória: %q", diag.Descricao)
	}
}
