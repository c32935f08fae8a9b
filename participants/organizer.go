package participants

import (
	"encoding/json"
	"log"
	"net/http"

	"medicamp/db"
	"medicamp/models"
	"medicamp/utils"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /organizer/participants?email= — registrations for the organizer
// dashboard, newest join first.
func ListForOrganizer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("email") == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Organizer email required")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: -1}})
	list, err := utils.FindAndDecode[models.Participant](r.Context(), db.ParticipantCollection, bson.M{}, opts)
	if err != nil {
		log.Printf("Error fetching organizer participants: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch participants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"participants": list})
}

// PATCH /organizer/confirm/:id — accept a paid registration.
func Confirm(w http.ResponseWriter, r *http.Request) {
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
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm participant")
		return
	}

	if err := models.ConfirmTransition(&participant); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = db.ParticipantCollection.UpdateOne(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"confirmationStatus": models.ConfirmationConfirmed}},
	)
	if err != nil {
		log.Printf("Error confirming participant %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm participant")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Participant confirmed successfully"})
}

// DELETE /organizer/cancel/:id — remove a registration outright.
func Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	result, err := db.ParticipantCollection.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		log.Printf("Error cancelling participant %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel registration")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": result.DeletedCount})
}

// OrganizerProfile is stored alongside registrations, keyed by organizerEmail.
type OrganizerProfile struct {
	OrganizerName  string `bson:"organizerName" json:"organizerName"`
	OrganizerEmail string `bson:"organizerEmail" json:"organizerEmail"`
	Phone          string `bson:"phone" json:"phone"`
	PhotoURL       string `bson:"photoURL" json:"photoURL"`
	Bio            string `bson:"bio" json:"bio"`
	TotalCamps     int    `bson:"totalCamps" json:"totalCamps"`
}

// GET /organizerProfile/:email — default empty profile when none exists yet.
func GetOrganizerProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email required")
		return
	}

	var profile OrganizerProfile
	err := db.ParticipantCollection.FindOne(r.Context(), bson.M{"organizerEmail": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, OrganizerProfile{OrganizerEmail: email})
		return
	}
	if err != nil {
		log.Printf("Organizer fetch error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// PUT /organizerProfile/update/:email — upsert the profile doc.
func UpdateOrganizerProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email required")
		return
	}

	var body struct {
		Name          string `json:"name"`
		OrganizerName string `json:"organizerName"`
		Phone         string `json:"phone"`
		PhotoURL      string `json:"photoURL"`
		Bio           string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile data")
		return
	}

	name := body.Name
	if name == "" {
		name = body.OrganizerName
	}

	update := bson.M{"$set": bson.M{
		"organizerName":  name,
		"organizerEmail": email,
		"phone":          body.Phone,
		"photoURL":       body.PhotoURL,
		"bio":            body.Bio,
	}}

	opts := options.Update().SetUpsert(true)
	result, err := db.ParticipantCollection.UpdateOne(r.Context(), bson.M{"organizerEmail": email}, update, opts)
	if err != nil {
		log.Printf("Organizer update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedId":    result.UpsertedID,
	})
}
