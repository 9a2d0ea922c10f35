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
	"github.com/liip/sheriff"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TicketPricesRouter(router fiber.Router) {
	router.Get("/", listTicketPrices)
	router.Post("/", createTicketPrice)
	router.Post("/preview", previewTicketPrice)
	router.Get("/:identifier", getTicketPrice)
	router.Delete("/:identifier", deleteTicketPrice)
}

func previewTicketPrice(c *fiber.Ctx) error {
	var selection faregen.TicketSelection
	if err := c.BodyParser(&selection); err != nil {
		return apiError(c, tmf.NewInvalidArgument("fare selection", "body must be valid JSON"))
	}

	definition, err := generator.GenerateTicketMatrix(context.Background(), selection)
	if err != nil {
		return apiError(c, err)
	}

	return marshalGroups(c, definition, "detailed")
}

func createTicketPrice(c *fiber.Ctx) error {
	var selection faregen.TicketSelection
	if err := c.BodyParser(&selection); err != nil {
		return apiError(c, tmf.NewInvalidArgument("fare selection", "body must be valid JSON"))
	}

	definition, err := generator.GenerateTicketMatrix(context.Background(), selection)
	if err != nil {
		return apiError(c, err)
	}

	definition.PrimaryIdentifier = fmt.Sprintf(tmf.PriceDefinitionIDFormat, uuid.NewString())

	collection := database.GetCollection("ticket_prices")
	if _, err := collection.InsertOne(context.Background(), definition); err != nil {
		return apiError(c, err)
	}

	c.SendStatus(fiber.StatusCreated)
	return marshalGroups(c, definition, "detailed")
}

func listTicketPrices(c *fiber.Ctx) error {
	collection := database.GetCollection("ticket_prices")

	cursor, err := collection.Find(context.Background(),
		bson.M{"deleted": bson.M{"$ne": true}},
		options.Find().SetSort(bson.M{"creationdatetime": -1}))
	if err != nil {
		return apiError(c, err)
	}

	definitions := []tmf.PriceDefinition{}
	if err := cursor.All(context.Background(), &definitions); err != nil {
		return apiError(c, err)
	}

	return marshalGroups(c, definitions, "basic")
}

func getTicketPrice(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	collection := database.GetCollection("ticket_prices")

	var definition tmf.PriceDefinition
	err := collection.FindOne(context.Background(), bson.M{
		"primaryidentifier": identifier,
		"deleted":           bson.M{"$ne": true},
	}).Decode(&definition)
	if err != nil {
		return apiError(c, tmf.NewNotFound("ticket price", identifier))
	}

	refreshPassengerNames(definition.PassengerSubcategories)
	for i := range definition.Prices {
		refreshFareNames(definition.Prices[i].PassengerFares)
	}

	return marshalGroups(c, definition, "detailed")
}

func deleteTicketPrice(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	collection := database.GetCollection("ticket_prices")

	now := time.Now()
	result, err := collection.UpdateOne(context.Background(),
		bson.M{"primaryidentifier": identifier, "deleted": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"deleted": true, "deletedat": now}})
	if err != nil {
		return apiError(c, err)
	}
	if result.MatchedCount == 0 {
		return apiError(c, tmf.NewNotFound("ticket price", identifier))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// refreshPassengerNames re-resolves passenger display names at read
// time. Prices are immutable once drafted but the master list is not,
// so a renamed subcategory shows its current name and a removed one
// degrades to N/A instead of a stale label.
func refreshPassengerNames(references []tmf.Reference) {
	for i := range references {
		references[i].Name = passengerName(references[i].Ref)
	}
}

func refreshFareNames(fares []tmf.PassengerFare) {
	for i := range fares {
		fares[i].Passenger.Name = passengerName(fares[i].Passenger.Ref)
	}
}

func passengerName(ref string) string {
	subcategory, err := refDataStore.FindSubcategoryByID(context.Background(), ref)
	if err != nil || subcategory == nil {
		return "N/A"
	}

	return subcategory.Name
}

func marshalGroups(c *fiber.Ctx, data interface{}, groups ...string) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{Groups: groups}, data)
	if err != nil {
		return apiError(c, err)
	}

	return c.JSON(reduced)
}
