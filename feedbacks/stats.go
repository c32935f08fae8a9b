package feedbacks

import (
	"context"
	"log"
	"math"
	"net/http"

	"medicamp/db"
	"medicamp/models"
	"medicamp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoundRating rounds a mean rating to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func averageRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := db.FeedbacksCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Rating float64 `bson:"rating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return RoundRating(results[0].Rating), nil
}

// GET /stats/impact — four independent reads, not a consistent snapshot.
func GetImpactStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	participants, err := db.ParticipantCollection.CountDocuments(ctx, bson.M{
		"paymentStatus":      models.PaymentPaid,
		"confirmationStatus": models.ConfirmationConfirmed,
	})
	if err != nil {
		log.Printf("Impact stats participants count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	camps, err := db.CampsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Impact stats camps count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	feedbacks, err := db.FeedbacksCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Impact stats feedbacks count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	rating, err := averageRating(ctx)
	if err != nil {
		log.Printf("Impact stats rating error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"participants": participants,
		"camps":        camps,
		"feedbacks":    feedbacks,
		"rating":       rating,
	})
}
