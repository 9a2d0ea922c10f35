package api

import (
	"github.com/farebox/farebox/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.RouteMastersRouter(group.Group("/routes"))

	routes.MasterDataRouter(group.Group("/fares/masterdata"))
	routes.TicketPricesRouter(group.Group("/fares/tickets"))
	routes.PassPricesRouter(group.Group("/fares/passes"))

	return webApp.Listen(listen)
}
