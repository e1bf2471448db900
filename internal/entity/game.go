package entity

import (
	"math/rand"
)

// Mark is the occupant of a cell and the identity of a player.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// Result is the final outcome of a game.
type Result string

const (
	ResultNone  Result = ""
	ResultTie   Result = "GAME OVER - TIE"
	ResultOWins Result = "GAME OVER - O WINS"
	ResultXWins Result = "GAME OVER - X WINS"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinCombos lists every row, column and diagonal, in evaluation order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// EmptyCells - returns the indices of every empty cell in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Place - puts the mark into the cell. The caller guarantees the cell is empty.
func (that *Board) Place(cell int, mark Mark) {
	that[cell] = mark
}

// EvaluateWinner - returns the mark of the first complete combo, or EmptyCell.
func (that *Board) EvaluateWinner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Game is the state both players share: the board, whose turn it is and whether it is over.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn"`
	Over   bool   `json:"over"`
	Winner Mark   `json:"winner,omitempty"`
	Moves  int    `json:"moves"`
}

// NewGame - creates a game with an empty board and first to move.
func NewGame(id string, first Mark) *Game {
	return &Game{
		ID:    id,
		Board: Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:  first,
	}
}

// IsFinished - reports whether the game reached its terminal state.
func (that *Game) IsFinished() bool {
	return that.Over
}

// Finish - moves the game into its terminal state with the given winner.
func (that *Game) Finish(winner Mark) {
	that.Over = true
	that.Winner = winner
}

// Result - returns the outcome line for a finished game.
func (that *Game) Result() Result {
	if !that.Over {
		return ResultNone
	}

	switch that.Winner {
	case PlayerO:
		return ResultOWins
	case PlayerX:
		return ResultXWins
	default:
		return ResultTie
	}
}

// NextMark - returns the identity that plays after the given one.
func NextMark(current Mark) Mark {
	if current == PlayerO {
		return PlayerX
	}
	return PlayerO
}

// RandomMark - picks the identity that starts the game.
func RandomMark(rng *rand.Rand) Mark {
	if rng.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerO
	}
	return PlayerX
}
