// Package score reads free-text tennis scores such as "6-3 4-6 7-5".
package score

import "strings"

// Parse counts the sets won by each player. Each whitespace-separated token is a set
// written as "<games1>-<games2>". The side with strictly more games takes the set.
// Ties and malformed tokens count for nobody. Game counts of any length compare
// correctly. Parse never fails.
func Parse(score string, player1ID, player2ID int) map[int]int {
	var p1Sets, p2Sets int
	for _, set := range strings.Fields(score) {
		games1, games2, ok := parseSet(set)
		if !ok {
			continue
		}
		switch c := compareGames(games1, games2); {
		case c > 0:
			p1Sets++
		case c < 0:
			p2Sets++
		}
	}
	result := make(map[int]int, 2)
	result[player2ID] = p2Sets
	result[player1ID] = p1Sets
	return result
}

func parseSet(set string) (string, string, bool) {
	parts := strings.Split(set, "-")
	if len(parts) != 2 {
		return "", "", false
	}
	games1, ok := leadingDigits(parts[0])
	if !ok {
		return "", "", false
	}
	games2, ok := leadingDigits(parts[1])
	if !ok {
		return "", "", false
	}
	return games1, games2, true
}

// leadingDigits reads the decimal prefix of s, so "6(4)" reads as 6 the way a
// tie-break annotation is usually written. Leading zeros are dropped.
func leadingDigits(s string) (string, bool) {
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return "", false
	}
	return strings.TrimLeft(s[:end], "0"), true
}

// compareGames compares two digit strings without leading zeros by value.
func compareGames(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
