package dto

import "github.com/rocketscienceinc/tictactoe-ai/internal/entity"

// GameResponse is the game as the UI sees it, status and outcome derived from the board.
type GameResponse struct {
	ID      string         `json:"id"`
	Board   entity.Board   `json:"board"`
	Turn    entity.Cell    `json:"turn"`
	Status  string         `json:"status"`
	Outcome entity.Outcome `json:"outcome"`
	AiFirst bool           `json:"ai_first"`
}

func NewGameResponse(game *entity.Game) *GameResponse {
	outcome, _ := game.Outcome()

	return &GameResponse{
		ID:      game.ID,
		Board:   game.Board,
		Turn:    game.Turn,
		Status:  game.Status(),
		Outcome: outcome,
		AiFirst: game.AiFirst,
	}
}
