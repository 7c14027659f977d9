package client

import (
	"io"

	"github.com/pkg/browser"
)

func init() {
	// browser пишет вывод запущенной программы в stdout и мешает выводу команд
	browser.Stdout = io.Discard
}

// BrowserOpener открывает ссылки в браузере по умолчанию.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
