package refdata

import (
	"context"
	"errors"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/tmf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var kindCollections = map[Kind]string{
	KindStation:           "stations",
	KindRoute:             "routes",
	KindSeatClass:         "seat_classes",
	KindTaxRule:           "tax_rules",
	KindTransportType:     "transport_types",
	KindTransportSubtype:  "transport_subtypes",
	KindPassengerCategory: "passenger_categories",
}

type MongoStore struct{}

func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

func activeFilter() bson.M {
	return bson.M{
		"status":  string(tmf.RecordStatusActive),
		"deleted": bson.M{"$ne": true},
	}
}

func (s *MongoStore) ListActive(ctx context.Context, kind Kind) ([]Record, error) {
	collectionName, known := kindCollections[kind]
	if !known {
		return nil, tmf.NewInvalidArgument("reference kind", string(kind))
	}

	collection := database.GetCollection(collectionName)
	cursor, err := collection.Find(ctx, activeFilter())
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for cursor.Next(ctx) {
		var record Record
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, cursor.Err()
}

func (s *MongoStore) FindByID(ctx context.Context, kind Kind, ref string) (*Record, error) {
	collectionName, known := kindCollections[kind]
	if !known {
		return nil, tmf.NewInvalidArgument("reference kind", string(kind))
	}

	filter := activeFilter()
	filter["primaryidentifier"] = ref

	var record Record
	err := database.GetCollection(collectionName).FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindSubcategoryByID resolves an embedded passenger subcategory
// through the materialised index table rather than unwinding every
// passenger category document.
func (s *MongoStore) FindSubcategoryByID(ctx context.Context, ref string) (*SubcategoryIndexEntry, error) {
	collection := database.GetCollection("passenger_subcategory_index")

	var entry SubcategoryIndexEntry
	err := collection.FindOne(ctx, bson.M{"subcategoryref": ref}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *MongoStore) FindTaxRule(ctx context.Context, ref string) (*tmf.TaxRule, error) {
	filter := activeFilter()
	filter["primaryidentifier"] = ref

	var taxRule tmf.TaxRule
	err := database.GetCollection("tax_rules").FindOne(ctx, filter).Decode(&taxRule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &taxRule, nil
}
