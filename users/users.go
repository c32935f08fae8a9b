package users

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
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

// POST /users — register-or-noop keyed on email. An existing user only gets
// its last_log_in refreshed.
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	if err := user.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := db.UserCollection.CountDocuments(r.Context(), bson.M{"email": user.Email})
	if err != nil {
		log.Printf("Error checking for existing user: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if count > 0 {
		_, err := db.UserCollection.UpdateOne(
			r.Context(),
			bson.M{"email": user.Email},
			bson.M{"$set": bson.M{"last_log_in": time.Now()}},
		)
		if err != nil {
			log.Printf("Error refreshing last log in for %s: %v", user.Email, err)
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User already exists", "inserted": false})
		return
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.ID = primitive.NilObjectID
	user.CreatedAt = time.Now()
	user.LastLogIn = time.Now()

	result, err := db.UserCollection.InsertOne(r.Context(), user)
	if err != nil {
		log.Printf("Error inserting user: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": result.InsertedID, "inserted": true})
}

// GET /users/role/:email
func GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.RespondWithError(w, http.StatusForbidden, "Email is required")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching role: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get user role")
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"role": role})
}

// GET /organizer/users/search?email= — case-insensitive substring match,
// capped to 10 rows, minimal projection.
func SearchUsers(w http.ResponseWriter, r *http.Request) {
	emailQuery := r.URL.Query().Get("email")
	if emailQuery == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email query is required")
		return
	}

	filter := bson.M{"email": bson.M{"$regex": regexp.QuoteMeta(emailQuery), "$options": "i"}}
	opts := options.Find().
		SetProjection(bson.M{"email": 1, "role": 1, "created_at": 1}).
		SetLimit(10)

	found, err := utils.FindAndDecode[models.User](r.Context(), db.UserCollection, filter, opts)
	if err != nil {
		log.Printf("Error searching users: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching users")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, found)
}

// PATCH /organizer/users/:id/make-organizer — role grant from the allow-list.
func UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !models.ValidAssignableRole(body.Role) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid role")
		return
	}

	result, err := db.UserCollection.UpdateOne(
		r.Context(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": body.Role}},
	)
	if err != nil {
		log.Printf("Error updating user role: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update role")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":       fmt.Sprintf("User role updated to %s", body.Role),
		"modifiedCount": result.ModifiedCount,
	})
}
