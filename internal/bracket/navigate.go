package bracket

import "github.com/goserg/tennisleague/internal/domain"

// Find returns the index of the match with the given id, or -1.
func Find(b []domain.BracketMatch, id string) int {
	for i := range b {
		if b[i].ID == id {
			return i
		}
	}
	return -1
}

// Dependent returns the index of the match fed by the match with the given id and
// the slot it feeds. It returns -1 for the final or an unknown id.
func Dependent(b []domain.BracketMatch, id string) (index int, slot int) {
	for i := range b {
		if s := b[i].FedBy(id); s != 0 {
			return i, s
		}
	}
	return -1, 0
}

// Started reports whether any result has been recorded.
func Started(b []domain.BracketMatch) bool {
	for i := range b {
		if b[i].Decided() {
			return true
		}
	}
	return false
}

// Clone copies the container so single matches can be replaced without touching b.
func Clone(b []domain.BracketMatch) []domain.BracketMatch {
	if b == nil {
		return nil
	}
	c := make([]domain.BracketMatch, len(b))
	copy(c, b)
	return c
}
