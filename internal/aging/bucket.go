package aging

import (
	"strconv"

	"netc/ar-statements/internal/models"
)

// BucketSource tags which classification rule produced a bucket, so the
// precedence chain is observable and testable on its own.
type BucketSource string

const (
	// BucketSourceComputed: mapped from the derived days-past-due value.
	BucketSourceComputed BucketSource = "computed"
	// BucketSourceLabelMatch: a supplied aging label matched the canonical
	// set, directly or via the label alias table.
	BucketSourceLabelMatch BucketSource = "label"
	// BucketSourceNumericLabel: the supplied label was numeric-looking and
	// was bucketized as a day count.
	BucketSourceNumericLabel BucketSource = "numeric_label"
	// BucketSourceDefault: nothing resolved; first canonical bucket.
	BucketSourceDefault BucketSource = "default"
)

// labelAliases reconciles historical aging-label spellings onto the
// canonical set. Retired six-bucket labels collapse into 90+.
var labelAliases = map[string]models.Bucket{
	"Over 90": models.Bucket90Plus,
	">90":     models.Bucket90Plus,
	"91-120":  models.Bucket90Plus,
	"120+":    models.Bucket90Plus,
	"0-30":    models.Bucket1To30,
	"0 – 30":  models.Bucket1To30,
	"0–30":    models.Bucket1To30,
}

// BucketForDays maps a day count through the threshold table. Bounds are
// inclusive; the last bucket is open-ended.
func BucketForDays(days int) models.Bucket {
	switch {
	case days <= 0:
		return models.BucketCurrent
	case days <= 30:
		return models.Bucket1To30
	case days <= 60:
		return models.Bucket31To60
	case days <= 90:
		return models.Bucket61To90
	default:
		return models.Bucket90Plus
	}
}

// normalizeLabel maps a raw aging label onto the canonical set, if possible.
func normalizeLabel(raw string) (models.Bucket, bool) {
	s := CleanString(raw)
	if b := models.Bucket(s); b.IsCanonical() {
		return b, true
	}
	if b, ok := labelAliases[s]; ok {
		return b, true
	}
	return "", false
}

// Classify produces exactly one canonical bucket for a row. The rules run in
// fixed precedence order, each only when the prior did not resolve:
//
//  1. Computed: when the day count had a real basis, bucketize it and ignore
//     any supplied label. Exported labels are frequently stale or rounded;
//     the derived value is the single source of truth when it exists.
//  2. LabelMatch: a supplied label that maps onto the canonical set.
//  3. NumericLabel: a numeric-looking label, bucketized as a day count.
//  4. Default: the first canonical bucket.
func Classify(rawLabel string, dc DayCounts) (models.Bucket, BucketSource) {
	if dc.Computed {
		return BucketForDays(dc.PastDue), BucketSourceComputed
	}

	if b, ok := normalizeLabel(rawLabel); ok {
		return b, BucketSourceLabelMatch
	}

	if f, err := strconv.ParseFloat(CleanString(rawLabel), 64); err == nil {
		return BucketForDays(int(f)), BucketSourceNumericLabel
	}

	return models.BucketCurrent, BucketSourceDefault
}
