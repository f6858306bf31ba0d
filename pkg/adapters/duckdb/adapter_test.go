package duckdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/crosscheck/pkg/adapter"
)

func TestNew(t *testing.T) {
	adp := New(nil)
	assert.False(t, adp.IsConnected())
	assert.Equal(t, "duckdb", adp.DialectName())
}

func TestAdapter_NotConnected(t *testing.T) {
	adp := New(nil)
	_, err := adp.QueryValue(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestAdapter_Registry(t *testing.T) {
	assert.True(t, adapter.IsRegistered("duckdb"))

	factory, ok := adapter.Get("duckdb")
	require.True(t, ok)
	assert.Equal(t, "duckdb", factory(nil).DialectName())
}
