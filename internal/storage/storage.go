// Package storage defines where league snapshots live and the JSON layout they are
// kept in. Every decode goes through the sanitizer, so storages never hand out a
// malformed state.
package storage

import (
	"encoding/json"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/sanitize"
)

// Encode renders state in the export layout, indented with two spaces. Empty
// collections are written as [] rather than null.
func Encode(state domain.AppState) ([]byte, error) {
	if state.Players == nil {
		state.Players = []domain.Player{}
	}
	if state.MonthlyData == nil {
		state.MonthlyData = []domain.MonthlyData{}
	}
	if state.MasterBracket == nil {
		state.MasterBracket = []domain.BracketMatch{}
	}
	return json.MarshalIndent(state, "", "  ")
}

// Decode parses and sanitizes a snapshot. Only malformed JSON is an error; any
// well-formed document yields a usable state.
func Decode(data []byte) (domain.AppState, error) {
	return sanitize.JSON(data)
}
