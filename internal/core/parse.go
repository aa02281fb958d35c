// Package core defines the sale record model and pure aggregation
// functions over sale collections.
//
// This file contains coercing parsers for entrepreneur-supplied numeric
// input. The form contract is lenient: unparsable or negative input
// coerces to zero instead of being rejected.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount parses a monetary amount from free-form input. It accepts
// both dot (12.34) and comma (12,34) decimal separators. Unparsable or
// negative input coerces to 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity parses a unit count. Unparsable or negative input
// coerces to 0.
func ParseQuantity(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseTransactionType resolves entrepreneur-supplied input to one of
// the fixed payment methods, ignoring case and surrounding whitespace.
// Unknown input returns the zero TransactionType, which fails
// validation downstream.
func ParseTransactionType(s string) TransactionType {
	for _, t := range TransactionTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t
		}
	}
	return ""
}
