package participants

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"medicamp/db"
	"medicamp/models"
	"medicamp/utils"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /participants — camp registration. Duplicate registrations for the
// same camp are allowed, matching the join form's behavior.
func Register(w http.ResponseWriter, r *http.Request) {
	var participant models.Participant
	if err := json.NewDecoder(r.Body).Decode(&participant); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid registration data")
		return
	}
	if err := participant.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	participant.ID = primitive.NilObjectID
	participant.PaymentStatus = models.PaymentUnpaid
	participant.ConfirmationStatus = models.ConfirmationPending
	participant.Status = models.StatusPending
	participant.JoinedAt = time.Now()

	result, err := db.ParticipantCollection.InsertOne(r.Context(), participant)
	if err != nil {
		log.Printf("Error inserting participant: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register participant")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": result.InsertedID})
}

// GET /participants/pending
func GetPending(w http.ResponseWriter, r *http.Request) {
	listByStatus(w, r, models.StatusPending)
}

// GET /participants/active
func GetActive(w http.ResponseWriter, r *http.Request) {
	listByStatus(w, r, models.StatusActive)
}

func listByStatus(w http.ResponseWriter, r *http.Request, status string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	participants, err := utils.FindAndDecode[models.Participant](ctx, db.ParticipantCollection, bson.M{"status": status})
	if err != nil {
		log.Printf("Error listing %s participants: %v", status, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load participants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, participants)
}

// GET /participants/:id
func GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	var participant models.Participant
	err = db.ParticipantCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&participant)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching participant %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch participant")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, participant)
}

// GET /participants/profile/:email
func GetProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var profile models.Participant
	err := db.ParticipantCollection.FindOne(r.Context(), bson.M{"participantEmail": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Printf("Error fetching profile for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// PATCH /participants/profile/:id — profile self-service. Identity and status
// fields are stripped from the patch so a participant cannot escalate itself.
func PatchProfile(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	var updateData map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	update := SanitizeProfilePatch(updateData)
	update["updatedAt"] = time.Now()

	result, err := db.ParticipantCollection.UpdateOne(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": update},
	)
	if err != nil {
		log.Printf("Error updating profile %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Participant not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":       "Profile updated successfully",
		"modifiedCount": result.ModifiedCount,
	})
}

// SanitizeProfilePatch drops the fields a participant must not set on itself.
func SanitizeProfilePatch(patch map[string]interface{}) map[string]interface{} {
	clean := map[string]interface{}{}
	for k, v := range patch {
		switch k {
		case "participantEmail", "status", "paymentStatus", "confirmationStatus", "_id":
			continue
		}
		clean[k] = v
	}
	return clean
}

// GET /participants/registered/:email — every registration for one email.
func GetRegistered(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	participants, err := utils.FindAndDecode[models.Participant](r.Context(), db.ParticipantCollection, bson.M{"participantEmail": email})
	if err != nil {
		log.Printf("Error fetching registrations for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, participants)
}

// GET /participants/feedback/:participantId — registration lookup backing the
// feedback form.
func GetForFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "participantId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	var participant models.Participant
	err = db.ParticipantCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&participant)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Printf("Feedback participant fetch error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, participant)
}

// DELETE /participants/registered/:campId — cancel a registration by camp.
func DeleteRegistered(w http.ResponseWriter, r *http.Request) {
	campID := chi.URLParam(r, "campId")

	result, err := db.ParticipantCollection.DeleteOne(r.Context(), bson.M{"campId": campID})
	if err != nil {
		log.Printf("Error deleting registration for camp %s: %v", campID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete registration")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Registration not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GET /analytics/participant?email= — per-participant registration analytics,
// oldest first, projected to the chart's fields.
func GetAnalytics(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email required")
		return
	}

	opts := options.Find().
		SetProjection(bson.M{"campName": 1, "campFees": 1, "paymentStatus": 1, "joinedAt": 1}).
		SetSort(bson.D{{Key: "joinedAt", Value: 1}})
	registrations, err := utils.FindAndDecode[models.Participant](r.Context(), db.ParticipantCollection, bson.M{"participantEmail": email}, opts)
	if err != nil {
		log.Printf("Error fetching analytics for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, registrations)
}
