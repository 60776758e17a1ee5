package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalBucketsOrder(t *testing.T) {
	assert.Equal(t, []Bucket{
		BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, Bucket90Plus,
	}, CanonicalBuckets)
}

func TestIsCanonical(t *testing.T) {
	for _, b := range CanonicalBuckets {
		assert.True(t, b.IsCanonical(), "bucket %q", b)
	}
	assert.False(t, Bucket("Over 90").IsCanonical())
	assert.False(t, Bucket("91-120").IsCanonical())
	assert.False(t, Bucket("").IsCanonical())
}

func TestNewCustomerSummaryZeroFillsBuckets(t *testing.T) {
	s := NewCustomerSummary("Acme")
	assert.Equal(t, "Acme", s.Customer)
	assert.Equal(t, "N/A", s.LargestOverdueRef)
	assert.Len(t, s.BucketTotals, len(CanonicalBuckets))
	for _, b := range CanonicalBuckets {
		total, ok := s.BucketTotals[b]
		assert.True(t, ok)
		assert.True(t, total.IsZero())
	}
}

func TestRawTableCellAccess(t *testing.T) {
	table := NewRawTable("export.csv",
		[]string{"Name", "Type"},
		[][]string{
			{"Acme", "Invoice"},
			{"Beta"},
		},
	)

	assert.Equal(t, 2, table.Len())
	assert.True(t, table.HasColumn("Name"))
	assert.False(t, table.HasColumn("name"))
	assert.Equal(t, "Invoice", table.Cell(0, "Type"))
	assert.Equal(t, "", table.Cell(1, "Type"), "ragged rows pad on access")
	assert.Equal(t, "", table.Cell(5, "Name"), "out-of-range rows are empty")
	assert.Equal(t, "", table.Cell(0, "Nope"))
}

func TestRawTableDuplicateHeadersFirstWins(t *testing.T) {
	table := NewRawTable("export.csv",
		[]string{"Name", "Name"},
		[][]string{{"first", "second"}},
	)
	assert.Equal(t, "first", table.Cell(0, "Name"))
}
