package repositories

import (
	"context"
	"fmt"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/pkg/database"
	"homeinsight-valuation/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const valuationCollection = "valuations"

type valuationRepository struct{}

func NewValuationRepository() ValuationRepository {
	return &valuationRepository{}
}

func (r *valuationRepository) collection() *mongo.Collection {
	return database.DB.Collection(valuationCollection)
}

func (r *valuationRepository) Save(ctx context.Context, valuation *models.Valuation) error {
	if _, err := r.collection().InsertOne(ctx, valuation); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert").Inc()
		return fmt.Errorf("valuation history insert failed: %v", err)
	}
	return nil
}

func (r *valuationRepository) ListRecent(ctx context.Context, limit int64) ([]models.Valuation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "estimatedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find").Inc()
		return nil, fmt.Errorf("valuation history query failed: %v", err)
	}
	defer cursor.Close(ctx)

	var valuations []models.Valuation
	if err := cursor.All(ctx, &valuations); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("valuation history decode failed: %v", err)
	}
	return valuations, nil
}
