package rosterRepo

import (
	"context"
	"fmt"
	"time"

	"mediflow/database"
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRosterRepo implements RosterRepository over the practitioners
// collection.
type MongoRosterRepo struct {
	practitionerColl *mongo.Collection
}

func NewMongoRosterRepo() *MongoRosterRepo {
	return &MongoRosterRepo{
		practitionerColl: database.Collection("practitioners"),
	}
}

func (repo *MongoRosterRepo) GetPractitioners(ctx context.Context, facilityID string, activeOnly bool) ([]models.Practitioner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"facilityId": facilityID}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := repo.practitionerColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying roster for facility %s: %w", facilityID, err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, fmt.Errorf("error decoding roster for facility %s: %w", facilityID, err)
	}

	if practitioners == nil {
		practitioners = []models.Practitioner{}
	}
	return practitioners, nil
}
