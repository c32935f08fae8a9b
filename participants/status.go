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
)

// PATCH /participants/:id/status — organizer-only.
//
// Activating a registration also promotes the owning user to the participant
// role. Both writes run in one transaction so the role can never flip without
// the status (and vice versa).
func UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	var body struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !models.ValidStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}

	session, err := db.Client.StartSession()
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update participant status")
		return
	}
	defer session.EndSession(r.Context())

	var modified int64
	_, err = session.WithTransaction(r.Context(), func(sc mongo.SessionContext) (interface{}, error) {
		result, err := db.ParticipantCollection.UpdateOne(
			sc,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"status": body.Status}},
		)
		if err != nil {
			return nil, err
		}
		modified = result.ModifiedCount

		if body.Status == models.StatusActive && body.Email != "" {
			_, err = db.UserCollection.UpdateOne(
				sc,
				bson.M{"email": body.Email},
				bson.M{"$set": bson.M{"role": models.RoleParticipant}},
			)
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		log.Printf("Status transaction failed for %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update participant status")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":       "Participant status updated successfully",
		"modifiedCount": modified,
	})
}
