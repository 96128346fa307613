package main

import (
	"github.com/montanaflynn/stats"
)

type statsResponse struct {
	Href        string
	Games       int64
	Ended       int
	Checkmates  int
	Stalemates  int
	MeanMoves   float64
	MedianMoves float64
	P80Moves    float64
}

func getStats() (statsResponse, error) {
	response := statsResponse{Href: "/stats"}
	if err := db.Model(&Game{}).Count(&response.Games).Error; err != nil {
		return response, err
	}
	var games []Game
	if err := db.Where(Game{End: true}).Find(&games).Error; err != nil {
		return response, err
	}
	moves := make([]int, 0, len(games))
	for _, game := range games {
		if game.Checkmate {
			response.Checkmates = response.Checkmates + 1
		}
		if game.Stalemate {
			response.Stalemates = response.Stalemates + 1
		}
		moves = append(moves, game.MoveCount)
	}
	response.Ended = len(games)
	if len(moves) == 0 {
		return response, nil
	}
	data := stats.LoadRawData(moves)
	var err error
	if response.MeanMoves, err = stats.Mean(data); err != nil {
		return response, err
	}
	if response.MedianMoves, err = stats.Median(data); err != nil {
		return response, err
	}
	if response.P80Moves, err = stats.PercentileNearestRank(data, 80); err != nil {
		return response, err
	}
	return response, nil
}
