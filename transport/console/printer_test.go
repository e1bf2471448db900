package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClosed = errors.New("closed")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errClosed
}

func TestPrinter_RenderBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: a printer writing into a buffer
		var buf bytes.Buffer
		printer := New(&buf)

		// When: rendering an empty board
		err := printer.RenderBoard(entity.Board{})

		// Then: every cell is a space
		require.NoError(t, err)
		assert.Equal(t, "   |   |  \n---|---|---\n   |   |  \n---|---|---\n   |   |  \n\n", buf.String())
	})

	t.Run("Partially filled board", func(t *testing.T) {
		var buf bytes.Buffer
		printer := New(&buf)

		board := entity.Board{
			entity.PlayerO, entity.EmptyCell, entity.PlayerX,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
		}

		err := printer.RenderBoard(board)

		require.NoError(t, err)
		assert.Equal(t, " O |   | X\n---|---|---\n   | X |  \n---|---|---\n O |   |  \n\n", buf.String())
	})

	t.Run("Write failure", func(t *testing.T) {
		printer := New(brokenWriter{})

		err := printer.RenderBoard(entity.Board{})

		require.ErrorIs(t, err, errClosed)
	})
}

func TestPrinter_RenderResult(t *testing.T) {
	tests := []struct {
		result entity.Result
		want   string
	}{
		{entity.ResultTie, "GAME OVER - TIE\n"},
		{entity.ResultOWins, "GAME OVER - O WINS\n"},
		{entity.ResultXWins, "GAME OVER - X WINS\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			var buf bytes.Buffer

			err := New(&buf).RenderResult(tt.result)

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
