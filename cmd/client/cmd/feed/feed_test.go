package feed

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pocketapp/cmd/client/cmd/ui"
	"pocketapp/internal/domain/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestBrowse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOut   []string
		wantLiked []string
	}{
		{
			name:      "like and quit",
			input:     "l 1\nl 3\nq\n",
			wantLiked: []string{"1", "3"},
		},
		{
			name:    "like twice unlikes",
			input:   "l 2\nl 2\n",
			wantOut: []string{"♥", "♡"},
		},
		{
			name:    "unknown post and command",
			input:   "l 42\nl\nzzz\n",
			wantOut: []string{"Пост #42 не найден", "Укажите номер поста", "Неизвестная команда: zzz"},
		},
		{
			name:    "refresh clears likes",
			input:   "l 1\nr\n",
			wantOut: []string{"Обновление..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := feed.New(0, slog.Default())
			var out bytes.Buffer
			p := ui.NewPrompter(strings.NewReader(tt.input), &out)

			// Act
			err := browse(context.Background(), f, p, &out)

			// Assert
			require.NoError(t, err)
			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}

			liked := []string{}
			for _, it := range f.Items() {
				if it.Liked {
					liked = append(liked, it.ID)
				}
			}
			if tt.wantLiked == nil {
				tt.wantLiked = []string{}
			}
			assert.Equal(t, tt.wantLiked, liked)
		})
	}
}

func TestPrintItems_JSON(t *testing.T) {
	ui.JSON = true
	defer func() { ui.JSON = false }()

	var out bytes.Buffer
	require.NoError(t, printItems(&out, feed.New(0, slog.Default()).Items()))

	assert.Contains(t, out.String(), `"display_likes"`)
	assert.Equal(t, 5, strings.Count(out.String(), `"liked": false`))
}
