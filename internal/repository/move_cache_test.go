package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/testing/suite"
)

func TestMoveCache(t *testing.T) {
	board := entity.Board{
		entity.PlayerMark, entity.PlayerMark, entity.EmptyCell,
		entity.EmptyCell, entity.AiMark, entity.EmptyCell,
	}

	t.Run("Miss on an unknown board", func(t *testing.T) {
		ctx, st := suite.New(t)

		cache := NewMoveCache(st.Storage, 0)

		// When: looking up a board that was never stored
		_, ok, err := cache.Get(ctx, board)

		// Then: it is a miss without error
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Hit after Set", func(t *testing.T) {
		ctx, st := suite.New(t)

		cache := NewMoveCache(st.Storage, 0)

		// Given: a cached move for the board
		require.NoError(t, cache.Set(ctx, board, 2))

		// When: looking the board up
		cell, ok, err := cache.Get(ctx, board)

		// Then: the cached cell is returned
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Rejects a cached cell that is occupied", func(t *testing.T) {
		ctx, st := suite.New(t)

		cache := NewMoveCache(st.Storage, 0)

		// Given: a corrupted entry pointing at an occupied cell
		require.NoError(t, st.Storage.Set(ctx, "move:"+board.Key(), 4, 0).Err())

		// When: looking the board up
		_, ok, err := cache.Get(ctx, board)

		// Then: ErrCorruptedMove is returned
		require.ErrorIs(t, err, ErrCorruptedMove)
		assert.False(t, ok)
	})
}
