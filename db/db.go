package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	CampsCollection       *mongo.Collection
	ParticipantCollection *mongo.Collection
	PaymentsCollection    *mongo.Collection
	FeedbacksCollection   *mongo.Collection
	Client                *mongo.Client
)

// mongoURI resolves the connection string. MONGODB_URI wins; otherwise the
// Atlas-style URI is assembled from DB_USER/DB_PASS like the hosted deployment.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	if user != "" && pass != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@cluster.fhxucjr.mongodb.net/?appName=Cluster", user, pass)
	}
	return "mongodb://localhost:27017"
}

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	clientOptions := options.Client().ApplyURI(mongoURI())
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("addCampDB")
	UserCollection = database.Collection("users")
	CampsCollection = database.Collection("addCamps")
	ParticipantCollection = database.Collection("participants")
	PaymentsCollection = database.Collection("payments")
	FeedbacksCollection = database.Collection("feedbacks")
}

// Ping confirms the deployment is reachable.
func Ping(ctx context.Context) error {
	return Client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
