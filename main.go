package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/asaidimu/go-arachne/arango"
	"github.com/asaidimu/go-arachne/core/query"
	"github.com/asaidimu/go-arachne/core/record"
	"github.com/asaidimu/go-arachne/core/schema"
)

const shopSchemaYAML = `
version: "1.0.0"
collections:
  - name: User
  - name: Dish
  - name: Order
    is_edge_collection: true
indexes:
  - name: OnUsername
    collection: User
    fields: [username]
    settings:
      type: persistent
      unique: true
graphs:
  - name: ShopGraph
    edge_definitions:
      - collection: Order
        from: [User]
        to: [Dish]
`

// User is a vertex document.
type User struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

func (User) CollectionName() string { return "User" }

// Order is an edge document connecting users to dishes.
type Order struct {
	Quantity int `json:"quantity"`
}

func (Order) CollectionName() string { return "Order" }

func main() {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 1. Compile a few representative query descriptors.
	adults := record.Query[User]().
		Filter(query.NewFilter(query.Field("age").GreaterOrEqual(18))).
		Sort("username")
	logger.Info("adults query", zap.String("aql", adults.MustToAQL()))

	popular := record.Query[User]().
		Filter(query.NewFilter(
			query.Field("username").Like("%e%")).
			Or(query.Field("age").In(15, 16, 17))).
		Limit(10, 20).
		Distinct()
	logger.Info("popular query", zap.String("aql", popular.MustToAQL()))

	orders := record.Query[User]().
		Filter(query.NewFilter(query.Field("username").Equals("felix"))).
		JoinOutbound(1, 2, false, query.NewQuery("Order").
			Prune(query.NewFilter(query.Field("quantity").GreaterThan(3))))
	logger.Info("orders traversal", zap.String("aql", orders.MustToAQL()))

	// 2. Parse and validate the declarative schema.
	shopSchema, err := schema.Parse([]byte(shopSchemaYAML))
	if err != nil {
		logger.Fatal("parsing schema", zap.Error(err))
	}
	if err := shopSchema.Validate(); err != nil {
		logger.Fatal("validating schema", zap.Error(err))
	}
	logger.Info("schema ok",
		zap.Int("collections", len(shopSchema.Collections)),
		zap.Int("indexes", len(shopSchema.Indexes)),
		zap.Int("graphs", len(shopSchema.Graphs)))

	// 3. Against a live database, apply the schema and round-trip a record.
	if os.Getenv("DB_HOST") == "" {
		logger.Info("set DB_HOST, DB_NAME, DB_USER and DB_PASSWORD to run the live part of the demo")
		return
	}

	ctx := context.Background()
	cfg, err := arango.ConfigFromEnv()
	if err != nil {
		logger.Fatal("loading configuration", zap.Error(err))
	}
	cfg.GenerateKeys = true

	db, err := arango.NewDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("connecting", zap.Error(err))
	}
	if err := db.ApplySchema(ctx, shopSchema, true); err != nil {
		logger.Fatal("applying schema", zap.Error(err))
	}

	bus, err := record.NewBus()
	if err != nil {
		logger.Fatal("creating event bus", zap.Error(err))
	}
	defer bus.Subscribe(string(record.RecordCreateSuccess), func(_ context.Context, event record.Event) error {
		logger.Info("record created",
			zap.String("collection", event.Collection),
			zap.Duration("took", event.Duration))
		return nil
	})()

	users := record.NewCollection[User](db, bus)
	felix, err := users.Create(ctx, User{Username: "felix", Age: 18})
	if err != nil {
		logger.Fatal("creating user", zap.Error(err))
	}
	logger.Info("stored user", zap.String("id", felix.ID))

	found, err := users.First(ctx, adults)
	if err != nil {
		logger.Fatal("querying users", zap.Error(err))
	}
	logger.Info("found user", zap.String("username", found.Record.Username))

	if err := users.Delete(ctx, felix); err != nil {
		logger.Fatal("deleting user", zap.Error(err))
	}
	logger.Info("demo complete")
}
