package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Role is the closed set of team-member roles. Anything other than
// RoleAdmin grants only the member dashboard.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleDesigner  Role = "designer"
	RoleManager   Role = "manager"
	RoleTester    Role = "tester"
)

// ParseRole validates a role value at the write boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDeveloper, RoleDesigner, RoleManager, RoleTester:
		return Role(s), nil
	}
	return "", fmt.Errorf("unrecognized role %q", s)
}

// TeamMember is a member profile document. UserID points back at the
// credential that authenticates this member; at most one member
// references a given credential.
type TeamMember struct {
	MemberID              string          `json:"memberID" bson:"_id,omitempty"`
	Name                  string          `json:"name" bson:"name"`
	Email                 string          `json:"email" bson:"email"`
	Role                  Role            `json:"role" bson:"role"`
	Skills                string          `json:"skills" bson:"skills"`
	PhoneNumber           string          `json:"phoneNumber" bson:"phoneNumber"`
	Position              string          `json:"position" bson:"position"`
	JoiningDate           string          `json:"joiningDate" bson:"joiningDate"`
	Bio                   string          `json:"bio" bson:"bio"`
	UserID                string          `json:"userID" bson:"userId"`
	MoneyReceived         decimal.Decimal `json:"moneyReceived" bson:"moneyReceived"`
	PasswordResetRequired bool            `json:"passwordResetRequired" bson:"passwordResetRequired"`
	AuditFields           `bson:",inline"`
}

// IsAdmin reports whether this member sees the full route set.
func (m TeamMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// Credential is an identity-provider record: the email/password pair a
// member signs in with. Profile data lives on TeamMember, not here.
type Credential struct {
	UserID           string     `json:"userID" bson:"_id,omitempty"`
	Email            string     `json:"email" bson:"email"`
	PasswordHash     string     `json:"-" bson:"passwordHash"`
	ResetTokenHash   string     `json:"-" bson:"resetTokenHash,omitempty"`
	ResetTokenExpiry *time.Time `json:"-" bson:"resetTokenExpiry,omitempty"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
}
