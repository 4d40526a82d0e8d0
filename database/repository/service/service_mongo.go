package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellnest/config"
	"wellnest/database"
	"wellnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoService is returned when a service id does not exist.
var ErrNoService = errors.New("service not found")

// ErrNoTemplate is returned when no email template with the given name exists;
// callers fall back to a built-in message body.
var ErrNoTemplate = errors.New("email template not found")

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	serviceColl  *mongo.Collection
	templateColl *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoServiceRepo{
		serviceColl:  db.Collection("services"),
		templateColl: db.Collection("email_templates"),
	}
}

// GetByID retrieves a service by its ID.
func (repo *MongoServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	err := repo.serviceColl.FindOne(ctxWithTimeout, bson.M{"id": serviceID}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoService
		}
		return nil, fmt.Errorf("error fetching service %s: %w", serviceID, err)
	}
	return &service, nil
}

// ListByLanguage returns all services for one content language.
func (repo *MongoServiceRepo) ListByLanguage(ctx context.Context, language string) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctxWithTimeout, bson.M{"language": language},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	if err := cursor.All(ctxWithTimeout, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// GetEmailTemplate retrieves an email template by name.
func (repo *MongoServiceRepo) GetEmailTemplate(ctx context.Context, name string) (*models.EmailTemplate, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var template models.EmailTemplate
	err := repo.templateColl.FindOne(ctxWithTimeout, bson.M{"name": name}).Decode(&template)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoTemplate
		}
		return nil, fmt.Errorf("error fetching email template %s: %w", name, err)
	}
	return &template, nil
}

// EnsureIndexes creates the necessary indexes on the service collections.
func (repo *MongoServiceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.serviceColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "language", Value: 1}},
			Options: options.Index().SetName("language_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	_, err = repo.templateColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create email template indexes: %w", err)
	}
	return nil
}
