package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createMasterIndexes()
	createRoutesIndexes()
	createPriceIndexes()
}

func createMasterIndexes() {
	// Every master collection gets a primaryidentifier index plus a
	// name index used by the uniqueness checks in the CRUD layer.
	for _, collectionName := range []string{
		"stations",
		"seat_classes",
		"tax_rules",
		"transport_types",
		"transport_subtypes",
		"passenger_categories",
	} {
		collection := GetCollection(collectionName)
		indexes := []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "name", Value: 1}},
			},
		}

		opts := options.CreateIndexes()
		_, err := collection.Indexes().CreateMany(context.Background(), indexes, opts)
		if err != nil {
			log.Error().Err(err).Str("collection", collectionName).Msg("Creating Index")
		}
	}

	// Subcategory index table. Subcategory identifiers are unique
	// document-wide so the lookup key is unique here too.
	subcategoryIndexCollection := GetCollection("passenger_subcategory_index")
	_, err := subcategoryIndexCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "subcategoryref", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "parentcategoryref", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createRoutesIndexes() {
	routesCollection := GetCollection("routes")
	_, err := routesCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "stops.stationref", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createPriceIndexes() {
	for _, collectionName := range []string{"ticket_prices", "pass_prices"} {
		collection := GetCollection(collectionName)
		_, err := collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "creationdatetime", Value: 1}},
			},
		}, options.CreateIndexes())
		if err != nil {
			log.Error().Err(err).Str("collection", collectionName).Msg("Creating Index")
		}
	}
}
