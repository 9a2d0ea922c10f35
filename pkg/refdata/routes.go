package refdata

import (
	"context"
	"errors"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/tmf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRouteStore struct{}

func NewMongoRouteStore() *MongoRouteStore {
	return &MongoRouteStore{}
}

func (s *MongoRouteStore) GetRoute(ctx context.Context, ref string) (*tmf.Route, error) {
	collection := database.GetCollection("routes")

	var route tmf.Route
	err := collection.FindOne(ctx, bson.M{
		"primaryidentifier": ref,
		"deleted":           bson.M{"$ne": true},
	}).Decode(&route)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &route, nil
}

// SaveRoute replaces the whole document. Topology operations are pure
// functions over a snapshot, so persistence is wholesale and the last
// writer wins.
func (s *MongoRouteStore) SaveRoute(ctx context.Context, route *tmf.Route) error {
	collection := database.GetCollection("routes")

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"primaryidentifier": route.PrimaryIdentifier}, route, opts)

	return err
}
