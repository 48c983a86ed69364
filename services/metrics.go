package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mealsConsumedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealplanner_meals_consumed_total",
		Help: "Meals marked as consumed",
	})
	ingredientOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealplanner_ingredient_outcomes_total",
		Help: "Per-ingredient reconciliation outcomes",
	}, []string{"outcome"}) // reduced | insufficient | no_match
)
