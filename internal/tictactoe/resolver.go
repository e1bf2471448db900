package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

type Outcome int

const (
	OutcomePlaced Outcome = iota
	OutcomeTie
	OutcomeWin
)

func (that Outcome) String() string {
	switch that {
	case OutcomePlaced:
		return "placed"
	case OutcomeTie:
		return "tie"
	case OutcomeWin:
		return "win"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// Move is what a single resolved turn did to the board.
type Move struct {
	Cell    int
	Outcome Outcome
}

// Chooser picks the cell to play among the empty ones.
type Chooser interface {
	Choose(cells []int) int
}

type randomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser - returns a chooser that picks uniformly among the empty cells.
func NewRandomChooser(rng *rand.Rand) Chooser {
	return &randomChooser{rng: rng}
}

func (that *randomChooser) Choose(cells []int) int {
	return cells[that.rng.Intn(len(cells))] //nolint: gosec // fairness is enough here
}

// Resolver applies one move for the acting player. It must only be used
// while the coordinator lock is held.
type Resolver struct {
	chooser Chooser
}

func NewResolver(chooser Chooser) *Resolver {
	return &Resolver{chooser: chooser}
}

// Resolve - picks a cell, places the mark and reports whether the move ended the game.
func (that *Resolver) Resolve(game *entity.Game, mark entity.Mark) Move {
	if game.IsFinished() {
		panic(fmt.Errorf("%w: %s tried to move", apperror.ErrGameFinished, mark))
	}

	cells := game.Board.EmptyCells()
	if len(cells) == 0 {
		game.Finish(entity.PlayerTie)
		return Move{Cell: -1, Outcome: OutcomeTie}
	}

	cell := that.chooser.Choose(cells)
	if cell < 0 || cell >= entity.BoardSize {
		panic(fmt.Errorf("%w: cell %d is off the board", apperror.ErrInvariant, cell))
	}

	if game.Board[cell] != entity.EmptyCell {
		panic(fmt.Errorf("%w: cell %d holds %s", apperror.ErrCellOccupied, cell, game.Board[cell]))
	}

	game.Board.Place(cell, mark)
	game.Moves++

	switch winner := game.Board.EvaluateWinner(); winner {
	case entity.EmptyCell:
		return Move{Cell: cell, Outcome: OutcomePlaced}
	case mark:
		game.Finish(mark)
		return Move{Cell: cell, Outcome: OutcomeWin}
	default:
		// a single mark of our own cannot complete the opponent's line
		panic(fmt.Errorf("%w: %s completed a line on %s's turn", apperror.ErrInvariant, winner, mark))
	}
}
