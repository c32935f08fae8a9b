package payments

import (
	"encoding/json"
	"log"
	"net/http"

	"medicamp/db"
	"medicamp/models"
	"medicamp/stripepay"
	"medicamp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var latestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// POST /create-payment-intent
func CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AmountInCents int64 `json:"amountInCents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AmountInCents < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "amountInCents must be a positive integer")
		return
	}

	clientSecret, err := stripepay.CreateIntent(body.AmountInCents)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": clientSecret})
}

// GET /payments?email= and GET /payments/users?email= — one participant's
// payment history, most recent first. The full collection is only reachable
// through the organizer-guarded /payments/all route, so the email is
// mandatory here.
func GetByParticipant(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email required")
		return
	}

	payments, err := utils.FindAndDecode[models.Payment](r.Context(), db.PaymentsCollection, bson.M{"participantEmail": email}, latestFirst)
	if err != nil {
		log.Printf("error fetching payments history: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get payments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// GET /payments/all — organizer view of every payment, most recent first,
// paginated via page/limit.
func GetAll(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	payments, err := utils.FindAndDecode[models.Payment](r.Context(), db.PaymentsCollection, bson.M{}, opts)
	if err != nil {
		log.Printf("error fetching payments: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get payments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}
