package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-ai/transport/dto"
)

const (
	actionGameNew     = "game:new"
	actionGameGet     = "game:get"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionGameDelete  = "game:delete"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID  string `json:"game_id,omitempty"`
	Cell    *int   `json:"cell,omitempty"`
	AiFirst bool   `json:"ai_first,omitempty"`
}

type ResponsePayload struct {
	Game    *dto.GameResponse `json:"game,omitempty"`
	Deleted string            `json:"deleted,omitempty"`
	Error   string            `json:"error,omitempty"`
}
