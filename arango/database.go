package arango

import (
	"context"
	"fmt"

	driver "github.com/arangodb/go-driver"
	driverhttp "github.com/arangodb/go-driver/http"
	"go.uber.org/zap"
)

// Database wraps a driver handle for one ArangoDB database. It implements
// record.Database and applies schema documents. All methods are safe for
// concurrent use.
type Database struct {
	cfg    Config
	handle driver.Database
	logger *zap.Logger
}

// NewDatabase dials the server and opens the configured database. A nil
// logger disables logging.
func NewDatabase(ctx context.Context, cfg Config, logger *zap.Logger) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := driverhttp.NewConnection(driverhttp.ConnectionConfig{
		Endpoints: []string{cfg.Host},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(cfg.Username, cfg.Password),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	handle, err := client.Database(ctx, cfg.Database)
	if err != nil {
		return nil, mapError(err)
	}
	return &Database{cfg: cfg, handle: handle, logger: logger}, nil
}

// Name returns the database name.
func (db *Database) Name() string { return db.cfg.Database }

func (db *Database) collection(ctx context.Context, name string) (driver.Collection, error) {
	col, err := db.handle.Collection(ctx, name)
	if err != nil {
		return nil, mapError(err)
	}
	return col, nil
}
