package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/khevencolino/brainfun/internal/backends"
	"github.com/khevencolino/brainfun/internal/debug"
	"github.com/khevencolino/brainfun/internal/lexer"
	"github.com/khevencolino/brainfun/internal/utils"
)

// Compiler representa o compilador principal: lê o arquivo, tokeniza,
// compila e entrega o programa aos backends
type Compiler struct {
	backends     []backends.Backend  // Destinos do programa compilado
	visualizador *VisualizadorArvore // Desenho da árvore (opcional)
	saida        io.Writer           // Mensagens de progresso
}

// NovoCompilador cria um novo compilador
func NovoCompilador(saida io.Writer, destinos ...backends.Backend) *Compiler {
	if saida == nil {
		saida = os.Stdout
	}
	return &Compiler{
		backends: destinos,
		saida:    saida,
	}
}

// MostrarArvore ativa o desenho da árvore do programa após a compilação
func (c *Compiler) MostrarArvore() {
	c.visualizador = NovoVisualizador()
}

// CompilarArquivo compila um arquivo fonte e devolve o programa gerado
func (c *Compiler) CompilarArquivo(arquivoEntrada string) (string, error) {
	inicio := time.Now()
	nome := filepath.Base(arquivoEntrada)

	// Lê o arquivo de entrada
	c.iniciarEtapa("Lendo o arquivo")
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		c.falharEtapa("ao ler o arquivo")
		return "", err
	}
	c.concluirEtapa("Lendo o arquivo")

	// Realiza análise léxica
	c.iniciarEtapa("Tokenizando o código")
	tokens, err := lexer.Tokenizar(conteudo, nome)
	if err != nil {
		c.falharEtapa("ao tokenizar o código")
		return "", err
	}
	c.concluirEtapa("Tokenizando o código")

	if debug.Enabled {
		lexer.ImprimirTokens(tokens)
	}

	// Gera o brainfuck
	c.iniciarEtapa("Compilando o código")
	programa, err := Compilar(tokens, nome, conteudo)
	if err != nil {
		c.falharEtapa("ao compilar o código")
		return "", err
	}
	c.concluirEtapa("Compilando o código")

	if c.visualizador != nil {
		c.visualizador.ImprimirArvore(c.saida, tokens)
	}

	for _, backend := range c.backends {
		etapa := fmt.Sprintf("Backend %s", backend.GetName())
		c.iniciarEtapa(etapa)
		if err := backend.Compile(programa); err != nil {
			c.falharEtapa(fmt.Sprintf("no backend %s", backend.GetName()))
			return "", err
		}
		c.concluirEtapa(etapa)
	}

	fmt.Fprintf(c.saida, "✔ Concluído em %.3fs\n", time.Since(inicio).Seconds())
	debug.Logger().Debug("compilação concluída",
		"arquivo", nome, "tokens", len(tokens), "simbolos", len(programa))

	return programa, nil
}

func (c *Compiler) iniciarEtapa(etapa string) {
	fmt.Fprintf(c.saida, "○ %s\r", etapa)
}

func (c *Compiler) concluirEtapa(etapa string) {
	fmt.Fprintf(c.saida, "✔ %s\n", etapa)
}

func (c *Compiler) falharEtapa(etapa string) {
	fmt.Fprintf(c.saida, "\n✘ Erro %s:\n", etapa)
}
