package domain

// SessionState classifies a resolved session.
type SessionState string

const (
	SessionUnauthenticated     SessionState = "unauthenticated"
	SessionAuthenticatedAdmin  SessionState = "authenticated_admin"
	SessionAuthenticatedMember SessionState = "authenticated_member"
)

// Session is the resolved identity for one request: written by the
// session resolver, read-only everywhere else. A credential with no
// matching member profile (or a resolution failure) still yields an
// authenticated non-admin session with no display name.
type Session struct {
	State       SessionState `json:"state"`
	UserID      string       `json:"userID,omitempty"`
	MemberID    string       `json:"memberID,omitempty"`
	IsAdmin     bool         `json:"isAdmin"`
	DisplayName string       `json:"displayName,omitempty"`
}

// ResolveSession produces the session for an authenticated credential.
// member is nil when zero profiles matched or the lookup failed; the
// session then falls back to the lower-privilege view.
func ResolveSession(userID string, member *TeamMember) Session {
	if member == nil {
		return Session{State: SessionAuthenticatedMember, UserID: userID}
	}
	s := Session{
		State:       SessionAuthenticatedMember,
		UserID:      userID,
		MemberID:    member.MemberID,
		IsAdmin:     member.IsAdmin(),
		DisplayName: member.Name,
	}
	if s.IsAdmin {
		s.State = SessionAuthenticatedAdmin
	}
	return s
}
