package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CompletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetcode_completions_total",
			Help: "Completions registered, by streak outcome",
		},
		[]string{"outcome"},
	)
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_commands_total",
			Help: "Slash commands handled, by command name",
		},
		[]string{"command"},
	)
	StoreFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_store_failures_total",
			Help: "Failed key/value store operations",
		},
		[]string{"op"},
	)
	GroupStreak = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "group_streak_days",
		Help: "Group streak at the last evaluation",
	})
	GroupMaxStreak = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "group_max_streak_days",
		Help: "Highest group streak recorded in history",
	})
)

// Register adds the domain collectors to the default registry.
func Register() {
	prometheus.MustRegister(CompletionsTotal)
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(StoreFailuresTotal)
	prometheus.MustRegister(GroupStreak)
	prometheus.MustRegister(GroupMaxStreak)
}
