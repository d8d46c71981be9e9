package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// MakeTurn - plays mark on cell for the side whose turn it is and passes the turn on.
func MakeTurn(gameInstance *entity.Game, mark entity.Cell, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := entity.ApplyMove(&gameInstance.Board, cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateTurn(gameInstance, mark)

	return nil
}

// validateMove - checks that mark belongs to the side on turn.
func validateMove(gameInstance *entity.Game, mark entity.Cell) error {
	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateTurn - hands the turn to the opponent, nobody moves after the game ends.
func updateTurn(gameInstance *entity.Game, mark entity.Cell) {
	if gameInstance.IsFinished() {
		gameInstance.Turn = entity.EmptyCell
		return
	}

	gameInstance.Turn = mark.Opponent()
}
