package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveCache interface {
	Get(ctx context.Context, board entity.Board) (int, bool, error)
	Set(ctx context.Context, board entity.Board, cell int) error
}

type engine interface {
	Analyze(board entity.Board) (*tictactoe.Analysis, error)
}

// GameManager plays the human's moves and answers each of them with the computer's move.
type GameManager struct {
	logger *slog.Logger

	gameRepo  gameRepo
	moveCache moveCache
	engine    engine
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, moveCache moveCache, engine engine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		moveCache: moveCache,
		engine:    engine,
	}
}

// NewGame - creates a game with an empty board, the computer opens when aiFirst is set.
func (that *GameManager) NewGame(ctx context.Context, aiFirst bool) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), aiFirst)

	if err := that.startGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

// Restart - replaces the game with a fresh one under the same id.
func (that *GameManager) Restart(ctx context.Context, id string, aiFirst bool) (*entity.Game, error) {
	if _, err := that.getGameByID(ctx, id); err != nil {
		return nil, err
	}

	game := entity.NewGame(id, aiFirst)

	if err := that.startGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

// DeleteGame - drops the game, its id can not be used afterwards.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeTurn - plays the human move on cell, then the computer reply if the game goes on.
// A rejected move leaves the stored game untouched.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerMark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsAiTurn() {
		if err = that.makeAiTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to make computer turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) startGame(ctx context.Context, game *entity.Game) error {
	if game.IsAiTurn() {
		if err := that.makeAiTurn(ctx, game); err != nil {
			return fmt.Errorf("failed to make first computer turn: %w", err)
		}
	}

	return that.updateGame(ctx, game)
}

func (that *GameManager) makeAiTurn(ctx context.Context, game *entity.Game) error {
	cell, err := that.bestMove(ctx, game)
	if err != nil {
		return err
	}

	if err = tictactoe.MakeTurn(game, entity.AiMark, cell); err != nil {
		return fmt.Errorf("computer move %d rejected: %w", cell, err)
	}

	return nil
}

// bestMove - looks the board up in the move cache, searches on a miss.
func (that *GameManager) bestMove(ctx context.Context, game *entity.Game) (int, error) {
	log := that.logger.With("method", "bestMove", "gameID", game.ID, "board", game.Board.Key())

	cell, ok, err := that.moveCache.Get(ctx, game.Board)
	if err != nil {
		log.Warn("failed to read move cache", "error", err)
	}

	if ok {
		log.Debug("move cache hit", "cell", cell)
		return cell, nil
	}

	analysis, err := that.engine.Analyze(game.Board)
	if err != nil {
		return 0, fmt.Errorf("failed to find best move: %w", err)
	}

	log.Debug("move searched", "cell", analysis.Best, "nodes", analysis.Nodes, "scores", analysis.Scores)

	if err = that.moveCache.Set(ctx, game.Board, analysis.Best); err != nil {
		log.Warn("failed to write move cache", "error", err)
	}

	return analysis.Best, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if outcome, finished := game.Outcome(); finished {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", outcome.String())
	}

	return nil
}
