package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMoveCache struct {
	mock.Mock
}

func (m *mockMoveCache) Get(ctx context.Context, board entity.Board) (int, bool, error) {
	args := m.Called(ctx, board)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *mockMoveCache) Set(ctx context.Context, board entity.Board, cell int) error {
	args := m.Called(ctx, board, cell)
	return args.Error(0)
}
