package tictactoe

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

var errWriteFailed = errors.New("write failed")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRenderer keeps every call and flags overlapping calls.
type recordingRenderer struct {
	mu       sync.Mutex
	inFlight atomic.Int32
	overlap  atomic.Bool

	boards  []entity.Board
	results []entity.Result

	boardErr error
}

func (that *recordingRenderer) enter() func() {
	if that.inFlight.Add(1) > 1 {
		that.overlap.Store(true)
	}
	return func() { that.inFlight.Add(-1) }
}

func (that *recordingRenderer) RenderBoard(board entity.Board) error {
	defer that.enter()()

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.boardErr != nil {
		return that.boardErr
	}

	that.boards = append(that.boards, board)
	return nil
}

func (that *recordingRenderer) RenderResult(result entity.Result) error {
	defer that.enter()()

	that.mu.Lock()
	defer that.mu.Unlock()

	that.results = append(that.results, result)
	return nil
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()

	f()

	return nil
}

// scriptedChooser replays a fixed sequence of cells, one per call. Once the
// script runs out it returns an off-board cell so the resolver panics.
type scriptedChooser struct {
	cells []int
	next  int
}

func newScriptedChooser(cells ...int) *scriptedChooser {
	return &scriptedChooser{cells: cells}
}

func (that *scriptedChooser) Choose([]int) int {
	if that.next >= len(that.cells) {
		return -1
	}

	cell := that.cells[that.next]
	that.next++

	return cell
}
