// Package ui - общие помощники вывода и ввода для команд клиента.
package ui

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pocketapp/internal/app/client"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ctxKey string

// ClientAppKey - ключ приложения в контексте команды.
const ClientAppKey ctxKey = "app"

// JSON включается глобальным флагом --json.
var JSON bool

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	titleColor   = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

var errNoApp = errors.New("приложение не инициализировано")

// App достает приложение из контекста команды.
func App(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errNoApp
	}
	return app, nil
}

func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func Warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "⚠️  "+format+"\n", args...)
}

func Title(w io.Writer, title string) {
	titleColor.Fprintf(w, "=== %s ===\n", title)
}

func Muted(w io.Writer, format string, args ...any) {
	mutedColor.Fprintf(w, format+"\n", args...)
}

func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// IsInteractive сообщает, подключен ли stdin к терминалу.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompter читает ответы пользователя построчно.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask печатает вопрос и возвращает введенную строку без пробелов по краям.
// Конец ввода без текста возвращает io.EOF.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm возвращает true только для ответов y/yes/д/да.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}
