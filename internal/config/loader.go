package config

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/khevencolino/brainfun/internal/utils"
)

// ArquivoPadrao é procurado no diretório atual quando nenhum -config é dado
const ArquivoPadrao = "brainfun.cue"

const esquema = `
saida?:        string & != ""
sobrescrever?: "perguntar" | "sempre" | "nunca"
depuracao?:    bool
arvore?:       bool
fita?:         int & >0
`

// Configuracao reúne as opções do compilador
type Configuracao struct {
	Saida        string
	Sobrescrever string
	Depuracao    bool
	Arvore       bool
	Fita         int
}

// Padrao retorna a configuração usada quando nenhum arquivo define um campo
func Padrao() Configuracao {
	return Configuracao{
		Saida:        "output.bf",
		Sobrescrever: "perguntar",
		Fita:         30000,
	}
}

// valores espelha o esquema; campos ausentes ficam nil
type valores struct {
	Saida        *string `json:"saida,omitempty"`
	Sobrescrever *string `json:"sobrescrever,omitempty"`
	Depuracao    *bool   `json:"depuracao,omitempty"`
	Arvore       *bool   `json:"arvore,omitempty"`
	Fita         *int    `json:"fita,omitempty"`
}

// Carregar lê os arquivos CUE em ordem; arquivos posteriores sobrepõem os anteriores
func Carregar(caminhos ...string) (Configuracao, error) {
	cfg := Padrao()

	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + esquema + "})")
	if err := schema.Err(); err != nil {
		return cfg, err
	}

	for _, caminho := range caminhos {
		conteudo, err := os.ReadFile(caminho)
		if err != nil {
			return cfg, utils.NovoErro("erro ao ler configuração", caminho, err)
		}

		valor := ctx.CompileBytes(conteudo, cue.Filename(caminho))
		if err := valor.Err(); err != nil {
			return cfg, utils.NovoErro("configuração inválida", caminho, err)
		}

		unificado := schema.Unify(valor)
		if err := unificado.Validate(cue.Concrete(true)); err != nil {
			return cfg, utils.NovoErro("configuração inválida", caminho, err)
		}

		var v valores
		if err := unificado.Decode(&v); err != nil {
			return cfg, utils.NovoErro("configuração inválida", caminho, err)
		}
		cfg.aplicar(v)
	}

	return cfg, nil
}

func (c *Configuracao) aplicar(v valores) {
	if v.Saida != nil {
		c.Saida = *v.Saida
	}
	if v.Sobrescrever != nil {
		c.Sobrescrever = *v.Sobrescrever
	}
	if v.Depuracao != nil {
		c.Depuracao = *v.Depuracao
	}
	if v.Arvore != nil {
		c.Arvore = *v.Arvore
	}
	if v.Fita != nil {
		c.Fita = *v.Fita
	}
}
