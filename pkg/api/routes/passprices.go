package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/faregen"
	"github.com/farebox/farebox/pkg/tmf"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func PassPricesRouter(router fiber.Router) {
	router.Get("/", listPassPrices)
	router.Post("/", createPassPrice)
	router.Post("/preview", previewPassPrice)
	router.Get("/:identifier", getPassPrice)
	router.Delete("/:identifier", deletePassPrice)
}

func previewPassPrice(c *fiber.Ctx) error {
	var selection faregen.PassSelection
	if err := c.BodyParser(&selection); err != nil {
		return apiError(c, tmf.NewInvalidArgument("pass selection", "body must be valid JSON"))
	}

	definition, err := generator.GeneratePassMatrix(context.Background(), selection)
	if err != nil {
		return apiError(c, err)
	}

	return marshalGroups(c, definition, "detailed")
}

func createPassPrice(c *fiber.Ctx) error {
	var selection faregen.PassSelection
	if err := c.BodyParser(&selection); err != nil {
		return apiError(c, tmf.NewInvalidArgument("pass selection", "body must be valid JSON"))
	}

	definition, err := generator.GeneratePassMatrix(context.Background(), selection)
	if err != nil {
		return apiError(c, err)
	}

	definition.PrimaryIdentifier = fmt.Sprintf(tmf.PassDefinitionIDFormat, uuid.NewString())

	collection := database.GetCollection("pass_prices")
	if _, err := collection.InsertOne(context.Background(), definition); err != nil {
		return apiError(c, err)
	}

	c.SendStatus(fiber.StatusCreated)
	return marshalGroups(c, definition, "detailed")
}

func listPassPrices(c *fiber.Ctx) error {
	collection := database.GetCollection("pass_prices")

	cursor, err := collection.Find(context.Background(),
		bson.M{"deleted": bson.M{"$ne": true}},
		options.Find().SetSort(bson.M{"creationdatetime": -1}))
	if err != nil {
		return apiError(c, err)
	}

	definitions := []tmf.PassDefinition{}
	if err := cursor.All(context.Background(), &definitions); err != nil {
		return apiError(c, err)
	}

	return marshalGroups(c, definitions, "basic")
}

func getPassPrice(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	collection := database.GetCollection("pass_prices")

	var definition tmf.PassDefinition
	err := collection.FindOne(context.Background(), bson.M{
		"primaryidentifier": identifier,
		"deleted":           bson.M{"$ne": true},
	}).Decode(&definition)
	if err != nil {
		return apiError(c, tmf.NewNotFound("pass price", identifier))
	}

	refreshPassengerNames(definition.PassengerSubcategories)
	for i := range definition.Prices {
		for j := range definition.Prices[i].Durations {
			refreshFareNames(definition.Prices[i].Durations[j].PassengerFares)
		}
	}

	return marshalGroups(c, definition, "detailed")
}

func deletePassPrice(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	collection := database.GetCollection("pass_prices")

	now := time.Now()
	result, err := collection.UpdateOne(context.Background(),
		bson.M{"primaryidentifier": identifier, "deleted": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"deleted": true, "deletedat": now}})
	if err != nil {
		return apiError(c, err)
	}
	if result.MatchedCount == 0 {
		return apiError(c, tmf.NewNotFound("pass price", identifier))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
