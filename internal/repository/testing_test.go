package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/enttest"
)

var testDBSeq atomic.Int64

// newTestClient opens an isolated in-memory database per test.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:reptest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	client := enttest.Open(t, sqliteDriverName, dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
