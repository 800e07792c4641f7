package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Driver wraps the Neo4j driver handle. Retrieval code borrows it read-only;
// the session controller holds the close authority.
type Driver struct {
	driver neo4j.DriverWithContext
}

func New(ctx context.Context, uri, username, password string) (*Driver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Driver{driver: driver}, nil
}

// Query runs a read transaction with bound parameters and returns each record
// as a plain map. Parameters are always bound, never interpolated.
func (d *Driver) Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("run cypher query: %w", err)
	}

	var records []map[string]any
	for result.Next(ctx) {
		records = append(records, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("consume cypher result: %w", err)
	}

	return records, nil
}

// Exec runs a write statement. Used by the population utility only.
func (d *Driver) Exec(ctx context.Context, cypher string, params map[string]any) error {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return fmt.Errorf("run cypher statement: %w", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("consume cypher result: %w", err)
	}
	return nil
}

func (d *Driver) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}
