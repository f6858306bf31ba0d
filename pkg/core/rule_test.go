package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAggregateKind(t *testing.T) {
	tests := []struct {
		input    string
		expected AggregateKind
		wantErr  bool
	}{
		{"COUNT_STAR", CountStar, false},
		{"sum", Sum, false},
		{" Count_Distinct ", CountDistinct, false},
		{"CUSTOM", Custom, false},
		{"MEDIAN", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAggregateKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRequiresColumn(t *testing.T) {
	assert.False(t, CountStar.RequiresColumn())
	assert.False(t, Custom.RequiresColumn())

	for _, k := range []AggregateKind{CountColumn, Sum, Avg, Min, Max, CountDistinct, CountNull, CountNotNull} {
		assert.True(t, k.RequiresColumn(), "%s should require a column", k)
	}
}

func TestParseThresholdKind(t *testing.T) {
	for _, s := range []string{"EXACT", "exact", " Percentage ", "ABSOLUTE"} {
		_, err := ParseThresholdKind(s)
		assert.NoError(t, err, "ParseThresholdKind(%q)", s)
	}

	_, err := ParseThresholdKind("FUZZY")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestLocatorDetail(t *testing.T) {
	tests := []struct {
		name     string
		loc      Locator
		expected string
	}{
		{
			"full qualification",
			Locator{Connection: "warehouse", Database: "Sales", Schema: "dbo", Table: "Orders"},
			"warehouse:Sales:dbo:Orders",
		},
		{
			"no database",
			Locator{Connection: "lake", Schema: "sales", Table: "orders"},
			"lake:sales:orders",
		},
		{
			"table only",
			Locator{Connection: "csvfile", Table: "data"},
			"csvfile:data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.Detail())
		})
	}
}

func TestRuleValidate(t *testing.T) {
	valid := Rule{
		ID:        "r1",
		Aggregate: Sum,
		Source:    Locator{Connection: "a", Table: "t", Column: "c"},
		Target:    Locator{Connection: "b", Table: "t", Column: "c"},
		Threshold: Exact,
	}
	require.NoError(t, valid.Validate())

	missingColumn := valid
	missingColumn.Target.Column = ""
	err := missingColumn.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires both source and target columns")

	badKind := valid
	badKind.Aggregate = "MODE"
	assert.Error(t, badKind.Validate())

	customNoExpr := valid
	customNoExpr.Aggregate = Custom
	err = customNoExpr.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom expression required")

	customOK := customNoExpr
	customOK.CustomExpression = "SUM(price * qty)"
	assert.NoError(t, customOK.Validate())

	negThreshold := valid
	negThreshold.ThresholdValue = -1
	err = negThreshold.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestQueryError(t *testing.T) {
	cause := assert.AnError
	err := AsQueryError(cause)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query execution failed")

	// Wrapping is idempotent.
	assert.Same(t, err, AsQueryError(err))
	assert.Nil(t, AsQueryError(nil))
}
