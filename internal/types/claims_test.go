package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrioritizeClaims_SeverityOrder(t *testing.T) {
	claims := []Claim{
		{ID: "c1", Severity: SeverityLow},
		{ID: "c2", Severity: SeverityHigh},
		{ID: "c3", Severity: SeverityMedium},
		{ID: "c4", Severity: SeverityHigh},
	}

	prioritized := PrioritizeClaims(claims)

	ids := make([]string, len(prioritized))
	for i, c := range prioritized {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"c2", "c4", "c3", "c1"}, ids)
}

func TestPrioritizeClaims_StableWithinSeverity(t *testing.T) {
	claims := []Claim{
		{ID: "a", Severity: SeverityHigh},
		{ID: "b", Severity: SeverityHigh},
		{ID: "c", Severity: SeverityHigh},
	}

	prioritized := PrioritizeClaims(claims)

	assert.Equal(t, "a", prioritized[0].ID)
	assert.Equal(t, "b", prioritized[1].ID)
	assert.Equal(t, "c", prioritized[2].ID)
}

func TestPrioritizeClaims_DoesNotMutateInput(t *testing.T) {
	claims := []Claim{
		{ID: "low", Severity: SeverityLow},
		{ID: "high", Severity: SeverityHigh},
	}

	_ = PrioritizeClaims(claims)

	assert.Equal(t, "low", claims[0].ID)
}

func TestPrioritizeClaims_UnknownSeveritySortsLast(t *testing.T) {
	claims := []Claim{
		{ID: "weird", Severity: Severity("urgent")},
		{ID: "low", Severity: SeverityLow},
	}

	prioritized := PrioritizeClaims(claims)

	assert.Equal(t, "low", prioritized[0].ID)
	assert.Equal(t, "weird", prioritized[1].ID)
}

func TestExistence_Known(t *testing.T) {
	assert.True(t, ExistsTrue.Known())
	assert.True(t, ExistsFalse.Known())
	assert.False(t, ExistsUnknown.Known())
}
