package feedbacks

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"medicamp/db"
	"medicamp/models"
	"medicamp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var latestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// POST /feedbacks
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid feedback data")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating and feedback required")
		return
	}

	rating, err := models.CoerceRating(req.Rating)
	if err != nil {
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

	doc := models.Feedback{
		ParticipantID:    participantID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		CampID:           campID,
		CampName:         req.CampName,
		Rating:           rating,
		Feedback:         req.Feedback,
		CreatedAt:        time.Now(),
	}

	result, err := db.FeedbacksCollection.InsertOne(r.Context(), doc)
	if err != nil {
		log.Printf("Feedback error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"message":    "Feedback submitted successfully",
		"feedbackId": result.InsertedID,
	})
}

// GET /feedbacks?participantEmail= — feedback newest first, optionally one
// participant's, paginated via page/limit.
func GetFeedbacks(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if email := r.URL.Query().Get("participantEmail"); email != "" {
		filter["participantEmail"] = email
	}

	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	feedbacks, err := utils.FindAndDecode[models.Feedback](r.Context(), db.FeedbacksCollection, filter, opts)
	if err != nil {
		log.Printf("Fetch feedbacks error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load feedbacks")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, feedbacks)
}

// GET /feedbacks/verified — feedback from paid, confirmed registrations.
func GetVerifiedFeedbacks(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{
		"paymentStatus":      models.PaymentPaid,
		"confirmationStatus": models.ConfirmationConfirmed,
	}

	feedbacks, err := utils.FindAndDecode[models.Feedback](r.Context(), db.FeedbacksCollection, filter, latestFirst)
	if err != nil {
		log.Printf("Fetch verified feedbacks error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load feedbacks")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, feedbacks)
}
