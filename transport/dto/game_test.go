package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func TestGameResponse_JSON(t *testing.T) {
	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a fresh game
		response := NewGameResponse(entity.NewGame("g1", false))

		// When: encoding and decoding the response
		data, err := json.Marshal(response)
		require.NoError(t, err)

		var decoded GameResponse
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: nothing is lost and the outcome is empty
		assert.Equal(t, *response, decoded)
		assert.Contains(t, string(data), `"outcome":""`)
		assert.Contains(t, string(data), `"status":"ongoing"`)
	})

	t.Run("Finished game", func(t *testing.T) {
		// Given: a game the computer won
		game := entity.NewGame("g2", true)
		game.Board = entity.Board{
			entity.AiMark, entity.AiMark, entity.AiMark,
			entity.PlayerMark, entity.PlayerMark, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		game.Turn = entity.EmptyCell
		response := NewGameResponse(game)

		// When: encoding and decoding the response
		data, err := json.Marshal(response)
		require.NoError(t, err)

		var decoded GameResponse
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the outcome comes back as the computer's win
		assert.Equal(t, entity.AiWins, decoded.Outcome)
		assert.Equal(t, entity.StatusFinished, decoded.Status)
		assert.Equal(t, *response, decoded)
	})
}
