package camps

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

var latestFirst = options.Find().SetSort(bson.D{{Key: "creation_date", Value: -1}})

// GET /addCamps/all
func GetAllCamps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	camps, err := utils.FindAndDecode[models.Camp](ctx, db.CampsCollection, bson.M{}, latestFirst)
	if err != nil {
		log.Printf("Error fetching camps: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch camps")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, camps)
}

// GET /addCamps/token?email= — all camps, or only those owned by one organizer.
func GetCampsByOrganizer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if email := r.URL.Query().Get("email"); email != "" {
		filter["organizerEmail"] = email
	}

	camps, err := utils.FindAndDecode[models.Camp](ctx, db.CampsCollection, filter, latestFirst)
	if err != nil {
		log.Printf("Error fetching camps: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch camps")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, camps)
}

// GET /camp-details/:campId
//
// A well-formed id that matches nothing returns 200 with a null body; the
// registration page treats that as "camp gone" itself.
func GetCampDetails(w http.ResponseWriter, r *http.Request) {
	campID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "campId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Camp ID")
		return
	}

	var camp models.Camp
	err = db.CampsCollection.FindOne(r.Context(), bson.M{"_id": campID}).Decode(&camp)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Printf("Error fetching camp %s: %v", campID.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch camp")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, camp)
}

// POST /addCamps
func CreateCamp(w http.ResponseWriter, r *http.Request) {
	var camp models.Camp
	if err := json.NewDecoder(r.Body).Decode(&camp); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid camp data")
		return
	}
	if err := camp.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	camp.ID = primitive.NilObjectID
	camp.CreationDate = time.Now()

	result, err := db.CampsCollection.InsertOne(r.Context(), camp)
	if err != nil {
		log.Printf("Error adding camp: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add camp")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": result.InsertedID})
}

// GET /orgDashboard/camp/:campId — single camp for the edit form.
func GetDashboardCamp(w http.ResponseWriter, r *http.Request) {
	campID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "campId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Camp ID")
		return
	}

	var camp models.Camp
	err = db.CampsCollection.FindOne(r.Context(), bson.M{"_id": campID}).Decode(&camp)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Camp not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching camp %s: %v", campID.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch camp")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, camp)
}

// PUT /orgDashboard/update-camp/:campId — replaces the fixed field subset only.
func UpdateCamp(w http.ResponseWriter, r *http.Request) {
	campID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "campId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Camp ID")
		return
	}

	var update models.CampUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid camp data")
		return
	}

	result, err := db.CampsCollection.UpdateOne(
		r.Context(),
		bson.M{"_id": campID},
		bson.M{"$set": update},
	)
	if err != nil {
		log.Printf("UPDATE ERROR: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Update failed")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Camp not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"modifiedCount": result.ModifiedCount})
}

// DELETE /delete-camp/:campId
func DeleteCamp(w http.ResponseWriter, r *http.Request) {
	campID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "campId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Camp ID")
		return
	}

	result, err := db.CampsCollection.DeleteOne(r.Context(), bson.M{"_id": campID})
	if err != nil {
		log.Printf("Error deleting camp: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete camp")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Camp not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Camp deleted successfully"})
}
