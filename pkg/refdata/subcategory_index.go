package refdata

import (
	"context"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SyncSubcategoryIndex rewrites the index rows of one passenger
// category. Called whenever a category document is written, so the
// index never lags behind the aggregate it is derived from.
func SyncSubcategoryIndex(ctx context.Context, category *tmf.PassengerCategory) error {
	collection := database.GetCollection("passenger_subcategory_index")

	_, err := collection.DeleteMany(ctx, bson.M{"parentcategoryref": category.PrimaryIdentifier})
	if err != nil {
		return err
	}

	var operations []mongo.WriteModel
	for _, subcategory := range category.Subcategories {
		if subcategory.Deleted {
			continue
		}

		operations = append(operations, mongo.NewInsertOneModel().SetDocument(SubcategoryIndexEntry{
			SubcategoryRef:    subcategory.PrimaryIdentifier,
			ParentCategoryRef: category.PrimaryIdentifier,
			Name:              subcategory.Name,
		}))
	}

	if len(operations) == 0 {
		return nil
	}

	_, err = collection.BulkWrite(ctx, operations)

	return err
}

// RebuildSubcategoryIndex regenerates the whole index table from the
// passenger_categories collection. Exposed through the indexer CLI
// command for recovery after manual edits.
func RebuildSubcategoryIndex(ctx context.Context) (int, error) {
	categoriesCollection := database.GetCollection("passenger_categories")

	cursor, err := categoriesCollection.Find(ctx, bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return 0, err
	}

	categories := 0
	for cursor.Next(ctx) {
		var category tmf.PassengerCategory
		if err := cursor.Decode(&category); err != nil {
			return categories, err
		}

		if err := SyncSubcategoryIndex(ctx, &category); err != nil {
			return categories, err
		}

		categories += 1
		log.Debug().Str("category", category.PrimaryIdentifier).Msg("Synced subcategory index")
	}

	return categories, cursor.Err()
}
