package generator

import (
	"github.com/ava12/cfg"
)

// Error codes used by Generate:
const (
	// NegativeMinError indicates negative minimal length.
	NegativeMinError = cfg.RangeErrors + iota

	// InvertedRangeError indicates maximal length less than minimal one.
	InvertedRangeError
)

func negativeMinError(minLen int) *cfg.Error {
	return cfg.FormatError(NegativeMinError, "minimal length %d is negative", minLen)
}

func invertedRangeError(minLen, maxLen int) *cfg.Error {
	return cfg.FormatError(InvertedRangeError, "maximal length %d is less than minimal length %d", maxLen, minLen)
}

func checkRange(minLen, maxLen int) error {
	if minLen < 0 {
		return negativeMinError(minLen)
	}
	if maxLen < minLen {
		return invertedRangeError(minLen, maxLen)
	}
	return nil
}
