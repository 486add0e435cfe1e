package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NovoErro("arquivo não existe", nomeArquivo, nil)
		}
		return "", NovoErro("erro ao ler arquivo", nomeArquivo, err)
	}
	return string(bytesConteudo), nil
}

// EscreverArquivo escreve conteúdo em um arquivo
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	// Cria o diretório se não existir
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErro("erro ao criar diretório", diretorio, err)
	}

	if err := os.WriteFile(nomeArquivo, []byte(conteudo), 0644); err != nil {
		return NovoErro("erro ao escrever arquivo", nomeArquivo, err)
	}

	return nil
}

// ArquivoExiste verifica se o caminho já existe
func ArquivoExiste(nomeArquivo string) bool {
	_, err := os.Stat(nomeArquivo)
	return err == nil
}
