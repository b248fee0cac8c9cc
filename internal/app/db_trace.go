package app

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxTracedQueryLength = 512
	// Projections wider than this are shown as a column count.
	maxTracedColumns = 8
)

// formatDBQueryForTrace collapses whitespace, shortens wide SELECT lists such
// as the player listing projection, and caps the statement length.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if normalized == "" {
		return normalized
	}

	normalized = collapseProjection(normalized)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

func collapseProjection(query string) string {
	const selectKeyword = "SELECT "
	if len(query) < len(selectKeyword) || !strings.EqualFold(query[:len(selectKeyword)], selectKeyword) {
		return query
	}
	rest := query[len(selectKeyword):]
	idx := strings.Index(strings.ToUpper(rest), " FROM ")
	if idx < 0 {
		return query
	}
	columns := strings.Count(rest[:idx], ",") + 1
	if columns <= maxTracedColumns {
		return query
	}
	return query[:len(selectKeyword)] + "<" + strconv.Itoa(columns) + " columns>" + rest[idx:]
}

