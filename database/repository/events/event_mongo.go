package eventsRepo

import (
	"context"
	"fmt"
	"time"

	"mediflow/database"
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventRepo implements EventRepository over the availability_events
// collection.
type MongoEventRepo struct {
	eventColl *mongo.Collection
}

func NewMongoEventRepo() *MongoEventRepo {
	return &MongoEventRepo{
		eventColl: database.Collection("availability_events"),
	}
}

func (repo *MongoEventRepo) GetAvailabilityEvents(ctx context.Context, hostID string, hostType models.HostType) ([]models.AvailabilityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"hostId":   hostID,
		"hostType": hostType,
	}

	cursor, err := repo.eventColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying availability events for host %s: %w", hostID, err)
	}
	defer cursor.Close(ctx)

	var events []models.AvailabilityEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding availability events for host %s: %w", hostID, err)
	}

	if events == nil {
		events = []models.AvailabilityEvent{}
	}
	return events, nil
}
