// Package database provides per-test database clients backed by isolated
// PostgreSQL schemas.
package database

import (
	"testing"

	"github.com/maestro-run/maestro/pkg/database"
	"github.com/maestro-run/maestro/test/util"
)

// NewTestClient provisions a migrated schema for the calling test and
// returns a client scoped to it. The schema and all connections are torn
// down via t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	connStr := util.ProvisionSchema(t)
	entClient, db := util.OpenPool(t, connStr)
	return database.NewClientFromEnt(entClient, db)
}
