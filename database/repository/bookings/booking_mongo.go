package bookingsRepo

import (
	"context"
	"fmt"
	"time"

	"mediflow/database"
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository over the appointments
// collection.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		bookingColl: database.Collection("appointments"),
	}
}

func (repo *MongoBookingRepo) GetFacilityBookings(ctx context.Context, facilityID string, from, to time.Time) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Overlap with [from, to): starts before the range ends and ends after
	// the range starts.
	filter := bson.M{
		"facilityId": facilityID,
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for facility %s: %w", facilityID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingRecord
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings for facility %s: %w", facilityID, err)
	}

	if bookings == nil {
		bookings = []models.BookingRecord{}
	}
	return bookings, nil
}
