package arquivo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/khevencolino/brainfun/internal/debug"
	"github.com/khevencolino/brainfun/internal/utils"
)

// PoliticaSobrescrita decide o que fazer quando o arquivo de saída já existe
type PoliticaSobrescrita string

const (
	SOBRESCREVER_PERGUNTAR PoliticaSobrescrita = "perguntar"
	SOBRESCREVER_SEMPRE    PoliticaSobrescrita = "sempre"
	SOBRESCREVER_NUNCA     PoliticaSobrescrita = "nunca"
)

// ErrNaoSobrescrito indica que o arquivo existente foi mantido
var ErrNaoSobrescrito = errors.New("o arquivo de saída não foi sobrescrito")

// Confirmacao pergunta se o arquivo existente pode ser sobrescrito
type Confirmacao func(caminho string) (bool, error)

type ArquivoBackend struct {
	caminho   string
	politica  PoliticaSobrescrita
	confirmar Confirmacao
}

func NewArquivoBackend(caminho string, politica PoliticaSobrescrita, confirmar Confirmacao) *ArquivoBackend {
	return &ArquivoBackend{
		caminho:   caminho,
		politica:  politica,
		confirmar: confirmar,
	}
}

func (a *ArquivoBackend) GetName() string { return "Arquivo Brainfuck" }

func (a *ArquivoBackend) Compile(programa string) error {
	if utils.ArquivoExiste(a.caminho) {
		debug.Printf("📄 '%s' já existe (política: %s)\n", a.caminho, a.politica)

		switch a.politica {
		case SOBRESCREVER_SEMPRE:
		case SOBRESCREVER_NUNCA:
			return ErrNaoSobrescrito
		default:
			if a.confirmar == nil {
				return ErrNaoSobrescrito
			}
			ok, err := a.confirmar(a.caminho)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNaoSobrescrito
			}
		}
	}

	return utils.EscreverArquivo(a.caminho, programa)
}

// PerguntarNoTerminal cria uma Confirmacao que escreve a pergunta em saida e
// lê uma linha de entrada. Resposta vazia, "y" ou "yes" confirmam.
// O leitor é compartilhado com quem lê a entrada depois da pergunta.
func PerguntarNoTerminal(entrada *bufio.Reader, saida io.Writer) Confirmacao {
	return func(caminho string) (bool, error) {
		fmt.Fprintf(saida, "  ? O arquivo '%s' já existe, deseja sobrescrever? (y) ", caminho)

		resposta, err := entrada.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(resposta)) {
		case "", "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// ValidarPolitica converte um texto em PoliticaSobrescrita
func ValidarPolitica(texto string) (PoliticaSobrescrita, error) {
	switch politica := PoliticaSobrescrita(texto); politica {
	case SOBRESCREVER_PERGUNTAR, SOBRESCREVER_SEMPRE, SOBRESCREVER_NUNCA:
		return politica, nil
	default:
		return "", fmt.Errorf("política de sobrescrita inválida: %q", texto)
	}
}
