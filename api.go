package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/tilechess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type agentRequest struct {
	GameID uuid.UUID
}

type tileRequest struct {
	File int
	Rank int
}

type gameResponse struct {
	Href   string
	Game   Game
	Pieces chess.Pieces
	Seat   *chess.Color  `json:",omitempty"`
	Result *chess.ClickResult `json:",omitempty"`
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type piecesResponse struct {
	Href   string
	Pieces chess.Pieces
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestAgent(c echo.Context) (*Game, uuid.UUID, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	game, err := getAgent(id)
	return game, id, err
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func requestTile(c echo.Context) (chess.Square, error) {
	var request tileRequest
	if err := c.Bind(&request); err != nil {
		return chess.NoSquare, err
	}
	square := chess.Square{File: request.File, Rank: request.Rank}
	if !square.Valid() {
		return chess.NoSquare, echo.NewHTTPError(http.StatusBadRequest, "square is off the board")
	}
	return square, nil
}

func responseAgent(game *Game, agentID uuid.UUID) gameResponse {
	response := gameResponse{Game: game.response(agentID), Pieces: game.pieces(), Href: path.Join("/agents", agentID.String())}
	if color, ok := game.seat(agentID); ok {
		response.Seat = &color
	}
	return response
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: game.response(uuid.Nil), Pieces: game.pieces(), Href: path.Join("/games", game.GameID.String())}
}

func responseGames(games []Game) gamesResponse {
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePieces(game *Game) piecesResponse {
	return piecesResponse{Pieces: game.pieces(), Href: path.Join("/games", game.GameID.String(), "pieces")}
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.POST("/agents", func(c echo.Context) error {
		var message agentRequest
		if err := c.Bind(&message); err != nil {
			return err
		}
		game, err := getGame(message.GameID)
		if err != nil {
			return errToHTTP(err)
		}
		id, err := game.makeAgent()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseAgent(game, id))
	})
	e.GET("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id))
	})
	e.PUT("/agents/:id", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		square, err := requestTile(c)
		if err != nil {
			return err
		}
		game, result, err := playTile(id, square)
		if err != nil {
			return errToHTTP(err)
		}
		response := responseAgent(game, id)
		response.Result = &result
		return c.JSON(http.StatusOK, response)
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	})
	e.POST("/games", func(c echo.Context) error {
		game, err := makeGame()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/pieces", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePieces(game))
	})
	e.GET("/stats", func(c echo.Context) error {
		response, err := getStats()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
