package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a session between one human and the computer. Status and outcome are
// always derived from the board and never stored.
type Game struct {
	ID      string `json:"id"`
	Board   Board  `json:"board"`
	Turn    Cell   `json:"turn"`
	AiFirst bool   `json:"ai_first"`
}

func NewGame(id string, aiFirst bool) *Game {
	turn := PlayerMark
	if aiFirst {
		turn = AiMark
	}

	return &Game{
		ID:      id,
		Board:   Board{},
		Turn:    turn,
		AiFirst: aiFirst,
	}
}

func (that *Game) Outcome() (Outcome, bool) {
	return EvaluateOutcome(that.Board)
}

func (that *Game) IsFinished() bool {
	_, finished := that.Outcome()
	return finished
}

func (that *Game) Status() string {
	if that.IsFinished() {
		return StatusFinished
	}
	return StatusOngoing
}

func (that *Game) IsAiTurn() bool {
	return !that.IsFinished() && that.Turn == AiMark
}
