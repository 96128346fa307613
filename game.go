package main

import (
	"time"

	"github.com/apex/log"
	"github.com/maplefeline/tilechess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

const minOpenGames = 10

// Game game.
type Game struct {
	gorm.Model

	BlackAgent   uuid.UUID   `gorm:"type:varchar;size:36;index"`
	Board        chess.Board `gorm:"type:varchar;size:128;not null" json:"-"`
	Check        bool
	Checkmate    bool
	End          bool
	GameID       uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	MoveCount    int
	SelectedFile int
	SelectedRank int
	Stalemate    bool
	Turn         chess.Color
	WhiteAgent   uuid.UUID `gorm:"type:varchar;size:36;index"`
}

// gameIdle purges stale games, then tops the open pool back up.
func gameIdle(retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	if err := purgeGames("finished", db.Where(Game{End: true}), cutoff); err != nil {
		return err
	}
	if err := purgeGames("abandoned", db.Where(Game{BlackAgent: placeHolder}).Not(Game{End: true}), cutoff); err != nil {
		return err
	}
	var count int64
	if err := db.Model(&Game{}).Where(Game{BlackAgent: placeHolder}).Count(&count).Error; err != nil {
		return err
	}
	for i := count; i < minOpenGames; i++ {
		if _, err := makeGame(); err != nil {
			return err
		}
	}
	return nil
}

func purgeGames(kind string, scope *gorm.DB, cutoff time.Time) error {
	result := scope.Unscoped().Where("updated_at < ?", cutoff).Delete(&Game{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.WithField("games", result.RowsAffected).WithField("kind", kind).Info("purged games")
	}
	return nil
}

func makeGame() (*Game, error) {
	engine := chess.NewGame()
	id := uuid.NewV4()
	game := Game{GameID: id, WhiteAgent: placeHolder, BlackAgent: placeHolder}
	game.apply(engine)
	if err := db.Create(&game).Error; err != nil {
		return nil, err
	}
	log.WithField("game", id).Info("game created")
	return getGame(id)
}

func getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := db.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func getGames() ([]Game, error) {
	var games []Game
	if err := db.Where(Game{BlackAgent: placeHolder}).Not(Game{End: true}).Find(&games).Error; err != nil {
		return nil, err
	}
	for i := range games {
		games[i] = games[i].response(uuid.Nil)
	}
	return games, nil
}

func (game Game) response(agentID uuid.UUID) Game {
	if !game.End {
		if !uuid.Equal(game.WhiteAgent, agentID) {
			game.WhiteAgent = uuid.Nil
		}
		if !uuid.Equal(game.BlackAgent, agentID) {
			game.BlackAgent = uuid.Nil
		}
	}
	return game
}

func (game Game) status() chess.Status {
	return chess.Status{Turn: game.Turn, Check: game.Check, Checkmate: game.Checkmate, Stalemate: game.Stalemate}
}

// engine rebuilds the rules engine from the stored row.
func (game Game) engine() *chess.Game {
	selected := chess.Square{File: game.SelectedFile, Rank: game.SelectedRank}
	return chess.Restore(game.Board.Pieces(), game.status(), selected)
}

// apply copies the engine state back into the row.
func (game *Game) apply(engine *chess.Game) {
	status := engine.Status()
	selected := engine.Selected()
	game.Board = engine.Pieces().Board()
	game.Turn = status.Turn
	game.Check = status.Check
	game.Checkmate = status.Checkmate
	game.Stalemate = status.Stalemate
	game.SelectedFile = selected.File
	game.SelectedRank = selected.Rank
	game.End = status.Over()
}

func (game Game) pieces() chess.Pieces {
	return game.Board.Pieces()
}

// seat returns the color played by the agent.
func (game Game) seat(agentID uuid.UUID) (chess.Color, bool) {
	switch {
	case uuid.Equal(game.WhiteAgent, agentID):
		return chess.White, true
	case uuid.Equal(game.BlackAgent, agentID):
		return chess.Black, true
	}
	return chess.White, false
}

func (game Game) full() bool {
	return !uuid.Equal(game.WhiteAgent, placeHolder) && !uuid.Equal(game.BlackAgent, placeHolder)
}
