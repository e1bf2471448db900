package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

const rowSeparator = "---|---|---"

// Printer writes boards and results as plain text.
type Printer struct {
	writer io.Writer
}

func New(writer io.Writer) *Printer {
	return &Printer{writer: writer}
}

// RenderBoard - prints three rows of cells followed by a blank line.
func (that *Printer) RenderBoard(board entity.Board) error {
	g := make([]any, 0, entity.BoardSize)
	for _, cell := range board {
		g = append(g, glyph(cell))
	}

	_, err := fmt.Fprintf(that.writer,
		" %s | %s | %s\n"+rowSeparator+"\n %s | %s | %s\n"+rowSeparator+"\n %s | %s | %s\n\n",
		g...,
	)
	if err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Printer) RenderResult(result entity.Result) error {
	if _, err := fmt.Fprintln(that.writer, string(result)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func glyph(cell entity.Mark) string {
	if cell == entity.EmptyCell {
		return " "
	}
	return string(cell)
}
