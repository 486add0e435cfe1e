package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/brainfun/internal/backends"
	"github.com/khevencolino/brainfun/internal/backends/arquivo"
	"github.com/khevencolino/brainfun/internal/backends/bytecode"
	"github.com/khevencolino/brainfun/internal/compiler"
	"github.com/khevencolino/brainfun/internal/config"
	"github.com/khevencolino/brainfun/internal/debug"
	"github.com/khevencolino/brainfun/internal/lexer"
	"github.com/khevencolino/brainfun/internal/utils"
)

// argumentos reúne o que foi passado na linha de comando
type argumentos struct {
	arquivo    string
	configPath string
	executar   bool
	ajuda      bool
	cfg        config.Configuracao
}

func main() {
	args, err := processarArgumentos(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "✘ Erro: %v\n", err)
		os.Exit(1)
	}

	if args.ajuda {
		mostrarAjuda()
		return
	}

	debug.Ativar(args.cfg.Depuracao)

	politica, err := arquivo.ValidarPolitica(args.cfg.Sobrescrever)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✘ Erro: %v\n", err)
		os.Exit(1)
	}

	destinos := montarBackends(args, politica, bufio.NewReader(os.Stdin), os.Stdout)

	compilador := compiler.NovoCompilador(os.Stdout, destinos...)
	if args.cfg.Arvore {
		compilador.MostrarArvore()
	}

	if _, err := compilador.CompilarArquivo(args.arquivo); err != nil {
		var diag *lexer.Diagnostico
		switch {
		case errors.As(err, &diag):
			diag.Imprimir()
		case errors.Is(err, arquivo.ErrNaoSobrescrito):
			fmt.Println("✘ Saindo, o arquivo não foi sobrescrito")
		default:
			fmt.Fprintf(os.Stderr, "✘ %v\n", err)
		}
		os.Exit(1)
	}
}

// montarBackends cria os destinos do programa. A pergunta de sobrescrita e a
// execução leem do mesmo leitor, na ordem em que acontecem.
func montarBackends(args argumentos, politica arquivo.PoliticaSobrescrita, entrada *bufio.Reader, saida io.Writer) []backends.Backend {
	destinos := []backends.Backend{
		arquivo.NewArquivoBackend(args.cfg.Saida, politica, arquivo.PerguntarNoTerminal(entrada, saida)),
	}
	if args.executar {
		destinos = append(destinos, bytecode.NewBytecodeBackend(args.cfg.Fita, entrada, saida))
	}
	return destinos
}

func processarArgumentos(linha []string) (argumentos, error) {
	var args argumentos

	flags := flag.NewFlagSet("brainfun", flag.ContinueOnError)
	saida := flags.String("o", "", "Arquivo de saída (padrão: output.bf)")
	configPath := flags.String("config", "", "Arquivo de configuração CUE (padrão: brainfun.cue, se existir)")
	sobrescrever := flags.String("sobrescrever", "", "O que fazer se a saída existir (perguntar, sempre, nunca)")
	depuracao := flags.Bool("debug", false, "Ativar mensagens de debug")
	arvore := flags.Bool("arvore", false, "Mostra a árvore do programa")
	executar := flags.Bool("executar", false, "Executa o programa compilado")
	fita := flags.Int("fita", 0, "Número de células da fita ao executar (padrão: 30000)")
	help := flags.Bool("help", false, "Mostra ajuda")

	if err := flags.Parse(linha); err != nil {
		return args, err
	}

	if *help {
		args.ajuda = true
		return args, nil
	}

	if flags.NArg() < 1 {
		return args, fmt.Errorf("arquivo de entrada requerido")
	}
	args.arquivo = flags.Arg(0)
	args.executar = *executar
	args.configPath = *configPath

	var caminhos []string
	switch {
	case args.configPath != "":
		caminhos = append(caminhos, args.configPath)
	case utils.ArquivoExiste(config.ArquivoPadrao):
		caminhos = append(caminhos, config.ArquivoPadrao)
	}

	cfg, err := config.Carregar(caminhos...)
	if err != nil {
		return args, err
	}

	// Flags passadas explicitamente sobrepõem a configuração
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Saida = *saida
		case "sobrescrever":
			cfg.Sobrescrever = *sobrescrever
		case "debug":
			cfg.Depuracao = *depuracao
		case "arvore":
			cfg.Arvore = *arvore
		case "fita":
			cfg.Fita = *fita
		}
	})
	args.cfg = cfg

	return args, nil
}

func mostrarAjuda() {
	fmt.Printf(`Compilador brainfun - gera Brainfuck a partir de arquivos .bfun

USO:
    brainfun [flags] <arquivo>

FLAGS:
    -o=<arquivo>            Arquivo de saída (padrão: output.bf)
    -config=<arquivo>       Configuração CUE (padrão: brainfun.cue, se existir)
    -sobrescrever=<modo>    perguntar, sempre ou nunca (padrão: perguntar)
    -debug                  Ativar mensagens de debug
    -arvore                 Mostra a árvore do programa
    -executar               Executa o programa após compilar
    -fita=<n>               Células da fita ao executar (padrão: 30000)
    -help                   Mostra esta ajuda

PALAVRAS-CHAVE:
    FORWARD n;    >  repetido n vezes
    BACKWARD n;   <  repetido n vezes
    ADD n|"c";    +  repetido n vezes (ou o código de c)
    SUB n|"c";    -  repetido n vezes (ou o código de c)
    OUT;          .
    STORE;        ,
    LOOP:         [
    END;          ]

CONFIGURAÇÃO (brainfun.cue):
    saida: "programa.bf"
    sobrescrever: "sempre"
    arvore: true

EXEMPLOS:
    brainfun programa.bfun                       # Gera output.bf
    brainfun -o ola.bf programa.bfun             # Gera ola.bf
    brainfun -executar programa.bfun             # Gera e executa
    brainfun -sobrescrever=sempre programa.bfun  # Não pergunta
`)
}
