package main

import (
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/tilechess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (game *Game) makeAgent() (uuid.UUID, error) {
	id := uuid.NewV4()
	if err := game.addAgent(id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// addAgent seats the agent as White, or as Black once White is taken. The
// seats are re-read under a row lock so concurrent joins cannot share one.
func (game *Game) addAgent(id uuid.UUID) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(game, Game{GameID: game.GameID}).Error; err != nil {
			return err
		}
		if game.full() {
			return echo.NewHTTPError(http.StatusBadRequest, "game is full")
		}
		if uuid.Equal(placeHolder, game.WhiteAgent) {
			game.WhiteAgent = id
		} else {
			game.BlackAgent = id
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return err
	}
	color, _ := game.seat(id)
	log.WithField("game", game.GameID).WithField("color", color).Info("agent seated")
	return nil
}

func getAgent(id uuid.UUID) (*Game, error) {
	var game Game
	if err := db.Where(Game{WhiteAgent: id}).Or(Game{BlackAgent: id}).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// playTile feeds a tile click from the agent into its game. The game row is
// locked for the whole click so one game has exactly one mutator.
func playTile(id uuid.UUID, square chess.Square) (*Game, chess.ClickResult, error) {
	var game Game
	var result chess.ClickResult
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(Game{WhiteAgent: id}).Or(Game{BlackAgent: id}).First(&game).Error; err != nil {
			return err
		}
		color, _ := game.seat(id)
		if game.End {
			return echo.NewHTTPError(http.StatusBadRequest, "game is over")
		}
		if !game.full() {
			return echo.NewHTTPError(http.StatusNotAcceptable, "waiting for opponent")
		}
		if color != game.Turn {
			return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
		}
		engine := game.engine()
		result = engine.HandleTileClick(square)
		game.apply(engine)
		if result.Outcome.Committed() {
			game.MoveCount = game.MoveCount + 1
		}
		return tx.Save(&game).Error
	})
	if err != nil {
		return nil, chess.ClickResult{}, err
	}
	log.WithFields(log.Fields{
		"game":    game.GameID,
		"square":  square,
		"outcome": result.Outcome,
	}).Info("tile played")
	return &game, result, nil
}
