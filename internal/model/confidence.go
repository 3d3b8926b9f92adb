// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// ConfidenceBucket is a render-time classification of a confidence score.
// It is computed on display and never stored on the message.
type ConfidenceBucket string

const (
	ConfidenceNone   ConfidenceBucket = ""
	ConfidenceLow    ConfidenceBucket = "low"
	ConfidenceMedium ConfidenceBucket = "medium"
	ConfidenceHigh   ConfidenceBucket = "high"
)

// BucketOf classifies c. Boundaries are exact: high needs c > 0.7, medium
// needs c > 0.4, anything else is low. A nil score gets no badge.
func BucketOf(c *float64) ConfidenceBucket {
	switch {
	case c == nil:
		return ConfidenceNone
	case *c > 0.7:
		return ConfidenceHigh
	case *c > 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Label returns the badge text for the bucket, empty when there is none.
func (b ConfidenceBucket) Label() string {
	switch b {
	case ConfidenceHigh:
		return "high confidence"
	case ConfidenceMedium:
		return "medium confidence"
	case ConfidenceLow:
		return "low confidence"
	default:
		return ""
	}
}
