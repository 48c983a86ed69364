package services

import (
	"context"
	"time"

	"github.com/gallegosdl/meal-planner-app-sub000/config"
	"github.com/gallegosdl/meal-planner-app-sub000/models"
	"github.com/gallegosdl/meal-planner-app-sub000/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConsumptionService runs the pantry reconciliation for "mark meal consumed"
// and keeps the audit history. The whole load -> reconcile -> persist ->
// record sequence runs inside one transaction with the user's pantry rows
// locked, so two overlapping consume requests for the same user serialize
// instead of losing each other's deductions.
type ConsumptionService struct {
	db  *gorm.DB
	hub *RealtimeHub
	cfg utils.MatcherConfig
}

func NewConsumptionService(db *gorm.DB, hub *RealtimeHub) *ConsumptionService {
	return &ConsumptionService{db: db, hub: hub, cfg: utils.DefaultMatcherConfig()}
}

// MealRequest is the recipe side of a consume action, as the meal-plan
// calendar sends it.
type MealRequest struct {
	Name        string             `json:"name"`
	Ingredients []utils.Ingredient `json:"ingredients"`
}

// ConsumeMeal deducts the meal's ingredients from the user's pantry and
// appends a MealConsumption audit row. Data-quality problems land inside the
// returned result; a non-nil error means the store failed and nothing was
// persisted.
func (s *ConsumptionService) ConsumeMeal(ctx context.Context, userID uint, eventID string, meal MealRequest) (*utils.ReconciliationResult, error) {
	log := config.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"event_id": eventID,
		"meal":     meal.Name,
	})
	log.Infof("processing meal consumption: %d ingredients", len(meal.Ingredients))

	var result utils.ReconciliationResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ?", userID).Order("updated_at DESC")
		if tx.Dialector.Name() == "postgres" {
			// per-user serialization; sqlite (tests) has no FOR UPDATE
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var rows []models.PantryItem
		if err := q.Find(&rows).Error; err != nil {
			return err
		}

		snapshot := make([]utils.PantrySnapshotItem, len(rows))
		for i, r := range rows {
			snapshot[i] = utils.PantrySnapshotItem{
				ID:        r.ID,
				Name:      r.ItemName,
				Category:  r.Category,
				Quantity:  r.Quantity,
				Unit:      r.Unit,
				UpdatedAt: r.UpdatedAt,
			}
		}

		result = utils.Reconcile(meal.Ingredients, snapshot, s.cfg)

		for i := range snapshot {
			if snapshot[i].Quantity == rows[i].Quantity {
				continue
			}
			if err := tx.Model(&models.PantryItem{}).
				Where("id = ?", snapshot[i].ID).
				Update("quantity", snapshot[i].Quantity).Error; err != nil {
				return err
			}
		}

		record := models.MealConsumption{
			UserID:                  userID,
			EventID:                 eventID,
			MealName:                meal.Name,
			ConsumedAt:              time.Now(),
			TotalIngredients:        result.Summary.TotalIngredients,
			IngredientsReduced:      result.Summary.TotalReductions,
			IngredientsInsufficient: result.Summary.TotalInsufficientItems,
			IngredientsNoMatch:      result.Summary.TotalNoMatchItems,
			SuccessRate:             result.Summary.SuccessRate,
			ReductionLog:            result.ReductionLog,
			InsufficientItems:       result.InsufficientItems,
			NoMatchItems:            result.NoMatchItems,
			UnitConversionLog:       result.UnitConversionLog,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		log.WithError(err).Error("meal consumption failed, pantry unchanged")
		return nil, err
	}

	mealsConsumedTotal.Inc()
	ingredientOutcomesTotal.WithLabelValues("reduced").Add(float64(result.Summary.TotalReductions))
	ingredientOutcomesTotal.WithLabelValues("insufficient").Add(float64(result.Summary.TotalInsufficientItems))
	ingredientOutcomesTotal.WithLabelValues("no_match").Add(float64(result.Summary.TotalNoMatchItems))

	log.WithFields(logrus.Fields{
		"reduced":      result.Summary.TotalReductions,
		"insufficient": result.Summary.TotalInsufficientItems,
		"no_match":     result.Summary.TotalNoMatchItems,
		"success_rate": result.Summary.SuccessRate,
	}).Info("meal consumption recorded")

	if s.hub != nil {
		s.hub.BroadcastConsumption(userID, map[string]any{
			"eventId": eventID,
			"meal":    meal.Name,
			"summary": result.Summary,
		})
	}
	return &result, nil
}

// History lists recent consumption records, newest first.
func (s *ConsumptionService) History(userID uint, limit int) ([]models.MealConsumption, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.MealConsumption
	err := s.db.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// ConsumptionStats aggregates the audit history for the analytics cards.
type ConsumptionStats struct {
	TotalMeals         int64                    `json:"totalMeals"`
	TotalIngredients   int64                    `json:"totalIngredients"`
	TotalReduced       int64                    `json:"totalReduced"`
	TotalInsufficient  int64                    `json:"totalInsufficient"`
	TotalNoMatch       int64                    `json:"totalNoMatch"`
	AverageSuccessRate int                      `json:"averageSuccessRate"`
	RecentConsumptions []models.MealConsumption `json:"recentConsumptions"`
}

// Stats summarizes the user's consumption history over an optional date
// range.
func (s *ConsumptionService) Stats(userID uint, from, to *time.Time) (*ConsumptionStats, error) {
	q := s.db.Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("consumed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("consumed_at <= ?", *to)
	}

	var records []models.MealConsumption
	if err := q.Order("consumed_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	stats := &ConsumptionStats{TotalMeals: int64(len(records))}
	var rateSum int
	for _, r := range records {
		stats.TotalIngredients += int64(r.TotalIngredients)
		stats.TotalReduced += int64(r.IngredientsReduced)
		stats.TotalInsufficient += int64(r.IngredientsInsufficient)
		stats.TotalNoMatch += int64(r.IngredientsNoMatch)
		rateSum += r.SuccessRate
	}
	if len(records) > 0 {
		stats.AverageSuccessRate = (rateSum + len(records)/2) / len(records)
	}
	if len(records) > 10 {
		records = records[:10]
	}
	stats.RecentConsumptions = records
	return stats, nil
}
