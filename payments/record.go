package payments

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"medicamp/db"
	"medicamp/models"
	"medicamp/stripepay"
	"medicamp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VerifyIntent is swapped out in tests; production hits the processor.
var VerifyIntent stripepay.IntentVerifier = stripepay.VerifyIntent

// POST /payments — record a completed charge.
//
// The client's claim of success is never trusted: the intent is re-fetched
// from the processor and must have succeeded for the matching amount. The
// participant's paymentStatus flip and the payment record insert then run in
// one transaction.
func RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment data")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	participantID, err := primitive.ObjectIDFromHex(req.ParticipantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}
	campID, err := primitive.ObjectIDFromHex(req.CampID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid camp ID")
		return
	}

	if err := VerifyIntent(req.PaymentIntentID, req.Amount); err != nil {
		log.Printf("Payment verification failed: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Payment not verified by processor")
		return
	}

	now := time.Now()
	payment := models.Payment{
		ParticipantID:    participantID,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantName:  req.ParticipantName,
		CampID:           campID,
		CampName:         req.CampName,
		Amount:           req.Amount,
		PaymentIntentID:  req.PaymentIntentID,
		PaymentMethod:    req.PaymentMethod,
		Status:           models.PaymentPaid,
		PaidAtString:     now.Format(time.RFC3339),
		CreatedAt:        now,
	}

	session, err := db.Client.StartSession()
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save payment")
		return
	}
	defer session.EndSession(r.Context())

	var insertedID interface{}
	var updated int64
	_, err = session.WithTransaction(r.Context(), func(sc mongo.SessionContext) (interface{}, error) {
		updateResult, err := db.ParticipantCollection.UpdateOne(
			sc,
			bson.M{"_id": participantID, "participantEmail": req.ParticipantEmail},
			bson.M{"$set": bson.M{
				"paymentStatus":   models.PaymentPaid,
				"paymentIntentId": req.PaymentIntentID,
			}},
		)
		if err != nil {
			return nil, err
		}
		updated = updateResult.ModifiedCount

		insertResult, err := db.PaymentsCollection.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		insertedID = insertResult.InsertedID
		return nil, nil
	})
	if err != nil {
		log.Printf("Payment save error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save payment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":   true,
		"message":   "Payment successful",
		"paymentId": insertedID,
		"updated":   updated,
	})
}
