package database

import (
	"testing"

	"github.com/maestro-run/maestro/pkg/database"
	"github.com/maestro-run/maestro/test/util"
)

// SharedTestDB is a single migrated schema that several clients can attach
// to. Each client gets its own connection pool, so multi-replica behavior
// like leader election runs against real storage with independent pools,
// the way separate pods would.
type SharedTestDB struct {
	connStr string
}

// NewSharedTestDB provisions one schema for the whole test. The schema is
// dropped via t.Cleanup after every client opened from it has closed.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	return &SharedTestDB{connStr: util.ProvisionSchema(t)}
}

// NewClient opens an independent pool against the shared schema. Closing
// one client does not affect the others.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.OpenPool(t, s.connStr)
	return database.NewClientFromEnt(entClient, db)
}
