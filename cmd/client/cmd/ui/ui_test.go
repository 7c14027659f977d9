package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Radha \nlast"), &out)

	answer, err := p.Ask("Имя")
	require.NoError(t, err)
	assert.Equal(t, "Radha", answer)
	assert.Equal(t, "Имя: ", out.String())

	answer, err = p.Ask("Возраст")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Ask("Адрес")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Да\n", want: true},
		{input: "\n", want: false},
		{input: "nope\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), io.Discard)

			got, err := p.Confirm("Выйти?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApp_Missing(t *testing.T) {
	_, err := App(context.Background())
	assert.ErrorIs(t, err, errNoApp)
}
