package dto

import (
	"github.com/projectdesk/pma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest provisions a credential and writes the profile.
type CreateMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
	Skills      string `json:"skills"`
	PhoneNumber string `json:"phoneNumber"`
	Position    string `json:"position"`
	JoiningDate string `json:"joiningDate"`
	Bio         string `json:"bio"`
}

// UpdateMemberRequest merges non-nil fields into an existing profile.
// Pointers distinguish omitted fields from zero values.
type UpdateMemberRequest struct {
	Name                  *string          `json:"name"`
	Email                 *string          `json:"email"`
	Role                  *string          `json:"role"`
	Skills                *string          `json:"skills"`
	PhoneNumber           *string          `json:"phoneNumber"`
	Position              *string          `json:"position"`
	JoiningDate           *string          `json:"joiningDate"`
	Bio                   *string          `json:"bio"`
	MoneyReceived         *decimal.Decimal `json:"moneyReceived"`
	PasswordResetRequired *bool            `json:"passwordResetRequired"`
}

// MemberResponse is the outward shape of a team member.
type MemberResponse struct {
	MemberID              string          `json:"memberID"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	Role                  string          `json:"role"`
	Skills                string          `json:"skills"`
	PhoneNumber           string          `json:"phoneNumber"`
	Position              string          `json:"position"`
	JoiningDate           string          `json:"joiningDate"`
	Bio                   string          `json:"bio"`
	MoneyReceived         decimal.Decimal `json:"moneyReceived"`
	PasswordResetRequired bool            `json:"passwordResetRequired"`
}

// ToMemberResponse converts a domain.TeamMember to its response DTO.
func ToMemberResponse(m *domain.TeamMember) MemberResponse {
	return MemberResponse{
		MemberID:              m.MemberID,
		Name:                  m.Name,
		Email:                 m.Email,
		Role:                  string(m.Role),
		Skills:                m.Skills,
		PhoneNumber:           m.PhoneNumber,
		Position:              m.Position,
		JoiningDate:           m.JoiningDate,
		Bio:                   m.Bio,
		MoneyReceived:         m.MoneyReceived,
		PasswordResetRequired: m.PasswordResetRequired,
	}
}

// ListMembersResponse wraps the full collection snapshot.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.TeamMember.
func ToListMembersResponse(members []domain.TeamMember) ListMembersResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: out}
}

// MemberSummaryResponse pairs a member's tasks with the derived
// financial summary (the details view).
type MemberSummaryResponse struct {
	Member  MemberResponse     `json:"member"`
	Tasks   []domain.Task      `json:"tasks"`
	Summary domain.TaskSummary `json:"summary"`
}
