package routes

import (
	"context"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/refdata"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func MasterDataRouter(router fiber.Router) {
	router.Get("/", getMasterData)
}

// getMasterData returns every fare dimension the generation form needs
// in one response, so the admin UI makes a single call on load.
func getMasterData(c *fiber.Ctx) error {
	ctx := context.Background()

	masterData := fiber.Map{}

	for key, kind := range map[string]refdata.Kind{
		"stations":            refdata.KindStation,
		"seatClasses":         refdata.KindSeatClass,
		"taxRules":            refdata.KindTaxRule,
		"transportTypes":      refdata.KindTransportType,
		"transportSubtypes":   refdata.KindTransportSubtype,
		"passengerCategories": refdata.KindPassengerCategory,
	} {
		records, err := refDataStore.ListActive(ctx, kind)
		if err != nil {
			return apiError(c, err)
		}

		masterData[key] = records
	}

	subcategoryCollection := database.GetCollection("passenger_subcategory_index")
	cursor, err := subcategoryCollection.Find(ctx, bson.M{})
	if err != nil {
		return apiError(c, err)
	}

	subcategories := []refdata.SubcategoryIndexEntry{}
	if err := cursor.All(ctx, &subcategories); err != nil {
		return apiError(c, err)
	}
	masterData["passengerSubcategories"] = subcategories

	return c.JSON(masterData)
}
