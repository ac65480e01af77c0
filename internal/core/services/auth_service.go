package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/projectdesk/pma_backend/internal/platform/config"
	"github.com/projectdesk/pma_backend/internal/utils"
)

// authService implements the AuthSvcFacade. It owns the credential
// store and delegates profile resolution to the member repository.
type authService struct {
	BaseService
	cfg            *config.Config
	credentialRepo portsrepo.CredentialRepository
	memberRepo     portsrepo.MemberRepository
	mailSender     portssvc.MailSender
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	cfg *config.Config,
	credentialRepo portsrepo.CredentialRepository,
	memberRepo portsrepo.MemberRepository,
	mailSender portssvc.MailSender,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		memberRepo:     memberRepo,
		mailSender:     mailSender,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login authenticates an email/password pair, resolves the session and
// issues a bearer token. Credentials with no team-member profile are
// rejected outright rather than signed in as a memberless session.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	cred, err := s.credentialRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up credential for login")
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	if !utils.CheckPasswordHash(password, cred.PasswordHash) {
		s.LogWarn(ctx, "Login rejected, password mismatch", slog.String("user_id", cred.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	member, err := s.memberRepo.FindMemberByUserID(ctx, cred.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to resolve member profile for login",
			slog.String("user_id", cred.UserID))
		return nil, fmt.Errorf("failed to resolve member profile: %w", err)
	}
	if member == nil {
		// A credential without a profile has no place in the app.
		s.LogWarn(ctx, "Login rejected, no member profile for credential",
			slog.String("user_id", cred.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(cred.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", cred.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	session := domain.ResolveSession(cred.UserID, member)
	s.LogInfo(ctx, "Login succeeded",
		slog.String("user_id", cred.UserID),
		slog.Bool("is_admin", session.IsAdmin))

	return &dto.LoginResponse{
		Token:                 token,
		Session:               session,
		PasswordResetRequired: member.PasswordResetRequired,
	}, nil
}

// ResolveSession re-runs profile resolution for an already
// authenticated credential. Lookup failures degrade to a non-admin
// session instead of failing the request.
func (s *authService) ResolveSession(ctx context.Context, userID string) domain.Session {
	member, err := s.memberRepo.FindMemberByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Session resolution failed, degrading to non-admin",
				slog.String("user_id", userID))
		}
		return domain.ResolveSession(userID, nil)
	}
	return domain.ResolveSession(userID, member)
}

// ChangePassword is the self-service path: the old password must check
// out before the new one is written. A matching profile with the
// forced-reset flag set gets the flag cleared in the same call.
func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	cred, err := s.credentialRepo.FindCredentialByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to look up credential: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, cred.PasswordHash) {
		s.LogWarn(ctx, "Password change rejected, old password mismatch",
			slog.String("user_id", userID))
		return apperrors.ErrUnauthorized
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.credentialRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.clearResetRequiredFlag(ctx, userID)
	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

// ForgotPassword issues a reset token and mails it out. An unknown
// email is reported as not found, matching the sign-in provider the
// reset flow replaces.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	cred, err := s.credentialRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Password reset requested for unknown email")
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up credential: %w", err)
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.ResetTokenExpiryDuration)
	if err := s.credentialRepo.SetResetToken(ctx, cred.UserID, utils.HashResetToken(rawToken), expiry); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.String("user_id", cred.UserID))
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf("A password reset was requested for your account.\n\n"+
		"Your reset token is: %s\n\n"+
		"It expires in %s. If you did not request this, ignore this email.",
		rawToken, s.cfg.ResetTokenExpiryDuration)

	if err := s.mailSender.Send(cred.Email, "Password reset", body); err != nil {
		s.LogError(ctx, err, "Failed to send reset email", slog.String("user_id", cred.UserID))
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.LogInfo(ctx, "Password reset email sent", slog.String("user_id", cred.UserID))
	return nil
}

// ResetPassword completes the emailed flow: the raw token must match
// the stored hash and must not be expired. The token is single use.
func (s *authService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	cred, err := s.credentialRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to look up credential: %w", err)
	}

	if cred.ResetTokenHash == "" || cred.ResetTokenExpiry == nil {
		return apperrors.ErrUnauthorized
	}
	if time.Now().After(*cred.ResetTokenExpiry) {
		s.LogWarn(ctx, "Reset token expired", slog.String("user_id", cred.UserID))
		return apperrors.ErrUnauthorized
	}
	if !utils.CompareResetTokenHash(token, cred.ResetTokenHash) {
		s.LogWarn(ctx, "Reset token mismatch", slog.String("user_id", cred.UserID))
		return apperrors.ErrUnauthorized
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.credentialRepo.UpdatePassword(ctx, cred.UserID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.credentialRepo.ClearResetToken(ctx, cred.UserID); err != nil {
		s.LogError(ctx, err, "Failed to clear reset token", slog.String("user_id", cred.UserID))
	}

	s.clearResetRequiredFlag(ctx, cred.UserID)
	s.LogInfo(ctx, "Password reset completed", slog.String("user_id", cred.UserID))
	return nil
}

// SetMemberPassword overwrites a member's password without the old
// one. The caller's admin check happens at the route, not here.
func (s *authService) SetMemberPassword(ctx context.Context, memberID, newPassword string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}
	if member.UserID == "" {
		return apperrors.ErrNotFound
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.credentialRepo.UpdatePassword(ctx, member.UserID, newHash); err != nil {
		s.LogError(ctx, err, "Failed to overwrite member password",
			slog.String("member_id", memberID))
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Member password overwritten by admin",
		slog.String("member_id", memberID))
	return nil
}

// clearResetRequiredFlag drops the forced-reset flag on the member
// profile after a successful password change. Best effort: failures
// are logged but do not undo the password write.
func (s *authService) clearResetRequiredFlag(ctx context.Context, userID string) {
	member, err := s.memberRepo.FindMemberByUserID(ctx, userID)
	if err != nil || member == nil || !member.PasswordResetRequired {
		return
	}
	member.PasswordResetRequired = false
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = userID
	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to clear reset-required flag",
			slog.String("user_id", userID))
	}
}
