package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIncrementsExistingCode(t *testing.T) {
	assert.Equal(t, "ORD-008", Next(OrderPrefix, "ORD-007"))
	assert.Equal(t, "CUST-002", Next(CustomerPrefix, "CUST-001"))
	assert.Equal(t, "HSN-100", Next(HSNPrefix, "HSN-099"))
}

func TestNextStartsAtOneWhenEmpty(t *testing.T) {
	assert.Equal(t, "ORD-001", Next(OrderPrefix, ""))
}

func TestNextFallsBackOnMalformedCode(t *testing.T) {
	for _, last := range []string{"ORD-abc", "ORD", "ORD-", "007", "ord-007", "ORD_007"} {
		assert.Equal(t, "ORD-001", Next(OrderPrefix, last), "last=%q", last)
	}
}

func TestNextFallsBackOnPrefixMismatch(t *testing.T) {
	// A customer code should never seed an order sequence.
	assert.Equal(t, "ORD-001", Next(OrderPrefix, "CUST-004"))
}

func TestNextWidensPastThreeDigits(t *testing.T) {
	assert.Equal(t, "ORD-1000", Next(OrderPrefix, "ORD-999"))
	assert.Equal(t, "ORD-10000", Next(OrderPrefix, "ORD-9999"))
}

func TestNextPreservesPaddingForSmallNumbers(t *testing.T) {
	assert.Equal(t, "HSN-010", Next(HSNPrefix, "HSN-009"))
}
