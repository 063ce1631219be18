package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MovesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tictactoe_moves_total",
			Help: "Moves applied or rejected by the engine",
		},
		[]string{"result"},
	)
	GamesFinishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tictactoe_games_finished_total",
			Help: "Finished games by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(MovesTotal)
	prometheus.MustRegister(GamesFinishedTotal)
}
