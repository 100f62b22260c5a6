// Package auth holds the admin gate of the league. It is a convenience switch for
// the operator, not a security boundary.
package auth

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/crypto/bcrypt"
)

type Role int

const (
	RoleGuest Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "guest"
}

// Action is an operation on the league state that needs a permission.
type Action string

const (
	EditResults  Action = "edit_results"
	AdvanceMonth Action = "advance_month"
	ManageRoster Action = "manage_roster"
	ImportState  Action = "import_state"
	ExportState  Action = "export_state"
)

var (
	ErrForbidden     = errors.New("access denied")
	ErrWrongPassword = errors.New("wrong admin password")
)

var permissions = map[Action]mapset.Set[Role]{
	EditResults:  mapset.NewSet[Role](RoleAdmin),
	AdvanceMonth: mapset.NewSet[Role](RoleAdmin),
	ManageRoster: mapset.NewSet[Role](RoleAdmin),
	ImportState:  mapset.NewSet[Role](RoleAdmin),
	ExportState:  mapset.NewSet[Role](RoleAdmin, RoleGuest),
}

// Session is passed explicitly to every mutating operation.
type Session struct {
	Role Role
}

var (
	Guest = Session{Role: RoleGuest}
	Admin = Session{Role: RoleAdmin}
)

// Allow returns ErrForbidden unless the session's role may perform the action.
func (s Session) Allow(a Action) error {
	roles, ok := permissions[a]
	if !ok || !roles.Contains(s.Role) {
		return ErrForbidden
	}
	return nil
}

// Gate checks the admin password against a bcrypt hash from the config.
type Gate struct {
	hash []byte
}

func NewGate(passwordHash string) *Gate {
	return &Gate{hash: []byte(passwordHash)}
}

// Login returns an admin session for the right password and a guest session
// otherwise. An empty password is a plain guest login.
func (g *Gate) Login(password string) (Session, error) {
	if password == "" {
		return Guest, nil
	}
	if len(g.hash) == 0 {
		return Guest, ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return Guest, ErrWrongPassword
	}
	return Admin, nil
}

// HashPassword produces the value to put in the admin_password_hash setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
