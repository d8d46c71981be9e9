package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Cell is the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerMark
	AiMark
)

const (
	BoardSize = 9

	playerSymbol = "X"
	aiSymbol     = "O"
)

// Outcome is the result of a finished game. An unfinished game has no outcome.
type Outcome uint8

const (
	PlayerWins Outcome = iota + 1
	AiWins
	Draw
)

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

// Board is a 3x3 grid in row-major order: index = row*3 + column.
type Board [BoardSize]Cell

func (that Cell) String() string {
	switch that {
	case PlayerMark:
		return playerSymbol
	case AiMark:
		return aiSymbol
	default:
		return ""
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = EmptyCell
	case playerSymbol:
		*that = PlayerMark
	case aiSymbol:
		*that = AiMark
	default:
		return fmt.Errorf("unknown cell %q", text)
	}

	return nil
}

// IsMark reports whether the cell value is one a player can place.
func (that Cell) IsMark() bool {
	return that == PlayerMark || that == AiMark
}

// Opponent returns the other side's mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerMark:
		return AiMark
	case AiMark:
		return PlayerMark
	default:
		return EmptyCell
	}
}

func (that Outcome) String() string {
	switch that {
	case PlayerWins:
		return "player_wins"
	case AiWins:
		return "ai_wins"
	case Draw:
		return "draw"
	default:
		return ""
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// UnmarshalText accepts the names written by MarshalText, "" means no outcome yet.
func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = 0
	case "player_wins":
		*that = PlayerWins
	case "ai_wins":
		*that = AiWins
	case "draw":
		*that = Draw
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}

	return nil
}

// ApplyMove - places mark on an empty cell. The board is left untouched on error.
func ApplyMove(board *Board, index int, mark Cell) error {
	if index < 0 || index >= len(board) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: unknown mark %d", apperror.ErrInvalidMove, mark)
	}

	if board[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	board[index] = mark

	return nil
}

// EvaluateOutcome - returns the outcome of the board, ok is false while the game is in progress.
// A completed line always wins over a full board.
func EvaluateOutcome(board Board) (Outcome, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a == EmptyCell || a != b || b != c {
			continue
		}

		if a == PlayerMark {
			return PlayerWins, true
		}
		return AiWins, true
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return 0, false
		}
	}

	return Draw, true
}

func (that Board) Outcome() (Outcome, bool) {
	return EvaluateOutcome(that)
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Key encodes the board as 9 characters, one per cell: "X", "O" or ".".
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(that))

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// String renders the board as three rows, e.g. "X|O|.\n.|X|.\n.|.|O".
func (that Board) String() string {
	key := that.Key()

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		line := key[row*3 : row*3+3]
		rows = append(rows, strings.Join(strings.Split(line, ""), "|"))
	}

	return strings.Join(rows, "\n")
}
