package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellnest/config"
	"wellnest/database"
	"wellnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoBooking is returned when a booking id does not exist.
var ErrNoBooking = errors.New("booking not found")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoBooking
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// FindOverlapping fetches non-cancelled bookings overlapping [start, end).
// Half-open rule: a stored [s, e) overlaps iff s < end and e > start.
func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
		"status":     bson.M{"$ne": models.StatusCancelled},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := repo.coll.Find(ctxWithTimeout, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding overlapping bookings: %w", err)
	}
	return bookings, nil
}

// MarkCancelled performs the one-way status flip as a compare-and-set: the
// filter excludes already-cancelled documents so concurrent double-cancels
// cannot both match.
func (repo *MongoBookingRepo) MarkCancelled(ctx context.Context, bookingID string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bookingID,
		"status": bson.M{"$ne": models.StatusCancelled},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled}}

	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return false, fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	return res.MatchedCount > 0, nil
}

// SearchByContact finds bookings whose email or phone contains the given
// fragments, case-insensitively, newest start time first.
func (repo *MongoBookingRepo) SearchByContact(ctx context.Context, email, phone string) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var conditions []bson.M
	if email != "" {
		conditions = append(conditions, bson.M{"email": bson.M{
			"$regex": primitive.Regex{Pattern: regexEscape(email), Options: "i"},
		}})
	}
	if phone != "" {
		conditions = append(conditions, bson.M{"phone": bson.M{
			"$regex": primitive.Regex{Pattern: regexEscape(phone), Options: "i"},
		}})
	}
	if len(conditions) == 0 {
		return nil, errors.New("email or phone required for booking search")
	}

	filter := bson.M{"$and": conditions}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error searching bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding booking search results: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking, for the calendar event feed.
func (repo *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// regexEscape neutralizes regex metacharacters in user-supplied fragments.
func regexEscape(s string) string {
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, s[i])
	}
	return string(escaped)
}
