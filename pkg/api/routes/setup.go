package routes

import (
	"github.com/farebox/farebox/pkg/faregen"
	"github.com/farebox/farebox/pkg/redis_client"
	"github.com/farebox/farebox/pkg/refdata"
)

var (
	refDataStore refdata.Store
	routeStore   refdata.RouteStore
	generator    *faregen.Generator
)

// Setup wires the handler dependencies. The master-data listing goes
// through the redis-backed cache; the generation path reads the
// database directly so drafts are never priced from stale records.
func Setup() {
	mongoStore := refdata.NewMongoStore()

	refDataStore = refdata.NewCachedStore(mongoStore, redis_client.Client)
	routeStore = refdata.NewMongoRouteStore()
	generator = faregen.NewGenerator(mongoStore, routeStore, nil)
}
