package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const winScore = 10

// MoveScore is the minimax value of placing the computer mark on Cell.
type MoveScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// Analysis holds the root scores of a search in ascending cell order.
type Analysis struct {
	Scores []MoveScore
	Best   int
	Nodes  int
}

// Engine computes perfect-play moves for the computer side.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (that *Engine) FindBestMove(board entity.Board) (int, error) {
	return FindBestMove(board)
}

func (that *Engine) Analyze(board entity.Board) (*Analysis, error) {
	return Analyze(board)
}

// FindBestMove - returns the empty cell that is optimal for the computer. Equal scores
// resolve to the lowest index.
func FindBestMove(board entity.Board) (int, error) {
	analysis, err := Analyze(board)
	if err != nil {
		return 0, err
	}

	return analysis.Best, nil
}

// Analyze - scores every empty cell for the computer with an exhaustive minimax search.
// The board is passed by value, the caller's copy is never touched.
func Analyze(board entity.Board) (*Analysis, error) {
	if outcome, finished := entity.EvaluateOutcome(board); finished {
		return nil, fmt.Errorf("%w: game already ended with %s", apperror.ErrInvalidState, outcome)
	}

	s := &search{board: &board}

	analysis := &Analysis{
		Scores: make([]MoveScore, 0, entity.BoardSize),
		Best:   -1,
	}

	bestScore := math.MinInt
	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = entity.AiMark
		score := s.minimax(0, false)
		board[i] = entity.EmptyCell

		analysis.Scores = append(analysis.Scores, MoveScore{Cell: i, Score: score})
		if score > bestScore {
			bestScore = score
			analysis.Best = i
		}
	}

	// unreachable for a board without an outcome, a full board is always a draw
	if analysis.Best < 0 {
		return nil, fmt.Errorf("%w: no empty cells", apperror.ErrInvalidState)
	}

	analysis.Nodes = s.nodes

	return analysis, nil
}

// search walks one shared board, every hypothetical move is reverted before returning.
type search struct {
	board *entity.Board
	nodes int
}

func (that *search) minimax(depth int, maximizing bool) int {
	that.nodes++

	if outcome, finished := entity.EvaluateOutcome(*that.board); finished {
		switch outcome {
		case entity.AiWins:
			return winScore - depth
		case entity.PlayerWins:
			return -winScore + depth
		default:
			return 0
		}
	}

	if maximizing {
		best := math.MinInt
		for i := range that.board {
			if that.board[i] != entity.EmptyCell {
				continue
			}

			that.board[i] = entity.AiMark
			best = max(best, that.minimax(depth+1, false))
			that.board[i] = entity.EmptyCell
		}

		return best
	}

	best := math.MaxInt
	for i := range that.board {
		if that.board[i] != entity.EmptyCell {
			continue
		}

		that.board[i] = entity.PlayerMark
		best = min(best, that.minimax(depth+1, true))
		that.board[i] = entity.EmptyCell
	}

	return best
}
