package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var Enabled bool = false

var nivel = new(slog.LevelVar)

var logger = NovoLogger(os.Stderr)

// Ativar liga ou desliga as mensagens de debug
func Ativar(ativo bool) {
	Enabled = ativo
	if ativo {
		nivel.Set(slog.LevelDebug)
	} else {
		nivel.Set(slog.LevelInfo)
	}
}

// Logger retorna o logger do compilador
func Logger() *slog.Logger {
	return logger
}

// DefinirSaida troca o destino das mensagens no terminal
func DefinirSaida(w io.Writer) {
	logger = NovoLogger(w)
}

// NovoLogger cria um logger que escreve em w e, sob systemd, também no journal
func NovoLogger(w io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: nivel,
		}),
	}

	if os.Getenv("JOURNAL_STREAM") != "" {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: nivel,
			ReplaceGroup: func(key string) string {
				return chaveJournal(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = chaveJournal(a.Key)
				return a
			},
		})
		if err == nil {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// chaveJournal converte uma chave para o formato aceito pelo journal
func chaveJournal(chave string) string {
	chave = strings.ToUpper(chave)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, chave)
}

func Printf(format string, args ...interface{}) {
	if Enabled {
		logger.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}
