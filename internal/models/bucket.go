package models

// Bucket is a canonical aging bucket label. The canonical set is fixed,
// ordered configuration: classification, display and workbook columns all
// follow CanonicalBuckets order.
type Bucket string

const (
	BucketCurrent  Bucket = "Current"
	Bucket1To30    Bucket = "1-30"
	Bucket31To60   Bucket = "31-60"
	Bucket61To90   Bucket = "61-90"
	Bucket90Plus   Bucket = "90+"
)

// CanonicalBuckets is the display and reconciliation order of the aging
// buckets. The final bucket is open-ended.
var CanonicalBuckets = []Bucket{
	BucketCurrent,
	Bucket1To30,
	Bucket31To60,
	Bucket61To90,
	Bucket90Plus,
}

// IsCanonical reports whether b is one of the canonical bucket labels.
func (b Bucket) IsCanonical() bool {
	for _, c := range CanonicalBuckets {
		if b == c {
			return true
		}
	}
	return false
}

func (b Bucket) String() string {
	return string(b)
}
