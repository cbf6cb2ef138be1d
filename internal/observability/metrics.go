package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "talkora_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// VotesCast counts processed vote operations by outcome (cast, retracted, switched).
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "talkora_votes_total",
		Help: "Total number of vote operations by outcome",
	}, []string{"outcome"})
)
