package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/crosscheck/pkg/adapter"
)

func TestInMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	require.NoError(t, adp.Connect(ctx, adapter.Config{Type: "sqlite", Path: ":memory:"}))
	defer func() { _ = adp.Close() }()

	_, err := adp.DB.ExecContext(ctx, "CREATE TABLE orders (id INTEGER, amount REAL)")
	require.NoError(t, err)
	_, err = adp.DB.ExecContext(ctx, "INSERT INTO orders VALUES (1, 10.5), (2, 4.5), (3, NULL)")
	require.NoError(t, err)

	v, err := adp.QueryValue(ctx, "SELECT COUNT(*) FROM orders")
	require.NoError(t, err)
	assert.EqualValues(t, int64(3), v)

	v, err = adp.QueryValue(ctx, "SELECT SUM(amount) FROM orders")
	require.NoError(t, err)
	assert.EqualValues(t, 15.0, v)

	// Aggregate over an empty set yields SQL NULL, which must stay nil.
	v, err = adp.QueryValue(ctx, "SELECT SUM(amount) FROM orders WHERE id > 100")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = adp.QueryValue(ctx, "SELECT amount FROM missing_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query execution failed")
}

func TestAdapter_Registry(t *testing.T) {
	assert.True(t, adapter.IsRegistered("sqlite"))
	assert.Equal(t, "sqlite", New(nil).DialectName())
}
