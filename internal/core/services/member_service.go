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
	"github.com/projectdesk/pma_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// memberService implements the MemberSvcFacade.
type memberService struct {
	BaseService
	memberRepo     portsrepo.MemberRepository
	credentialRepo portsrepo.CredentialRepository
	taskRepo       portsrepo.TaskRepository
}

// NewMemberService creates a new member service with the provided dependencies
func NewMemberService(
	memberRepo portsrepo.MemberRepository,
	credentialRepo portsrepo.CredentialRepository,
	taskRepo portsrepo.TaskRepository,
) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo:     memberRepo,
		credentialRepo: credentialRepo,
		taskRepo:       taskRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// CreateMember provisions the credential first and then writes the
// profile that references it. If the profile write fails the
// credential is left behind; it is unreachable without a profile and
// harmless.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.TeamMember, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if existing, err := s.credentialRepo.FindCredentialByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s already registered", apperrors.ErrDuplicate, req.Email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing credential: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID, err := s.credentialRepo.SaveCredential(ctx, domain.Credential{
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save credential for new member")
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	member := domain.TeamMember{
		Name:          req.Name,
		Email:         req.Email,
		Role:          role,
		Skills:        req.Skills,
		PhoneNumber:   req.PhoneNumber,
		Position:      req.Position,
		JoiningDate:   req.JoiningDate,
		Bio:           req.Bio,
		UserID:        userID,
		MoneyReceived: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	memberID, err := s.memberRepo.SaveMember(ctx, member)
	if err != nil {
		s.LogError(ctx, err, "Failed to save member profile",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	member.MemberID = memberID

	s.LogInfo(ctx, "Member created",
		slog.String("member_id", memberID),
		slog.String("role", string(role)))
	return &member, nil
}

// GetMemberByID retrieves a member by its ID
func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.TeamMember, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find member by ID",
				slog.String("member_id", memberID))
		}
		return nil, err
	}
	return member, nil
}

// ListMembers retrieves all team members
func (s *memberService) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.memberRepo.FindMembers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, err
	}
	if members == nil {
		return []domain.TeamMember{}, nil
	}
	return members, nil
}

// UpdateMember merges the non-nil request fields into the stored
// profile. Role changes take effect on the member's next request.
func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, updaterUserID string) (*domain.TeamMember, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		member.Role = role
	}
	if req.Skills != nil {
		member.Skills = *req.Skills
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.JoiningDate != nil {
		member.JoiningDate = *req.JoiningDate
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.MoneyReceived != nil {
		member.MoneyReceived = *req.MoneyReceived
	}
	if req.PasswordResetRequired != nil {
		member.PasswordResetRequired = *req.PasswordResetRequired
	}

	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = updaterUserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member",
			slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}

// DeleteMember removes the profile. The credential stays behind and
// becomes unreachable, same as an orphan from a failed provisioning.
// Tasks assigned to the member keep their dangling reference.
func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete member",
				slog.String("member_id", memberID))
		}
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}

// MemberSummary returns the member's tasks with the derived financial
// summary, for the member-details view.
func (s *memberService) MemberSummary(ctx context.Context, memberID string) (*dto.MemberSummaryResponse, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindTasks(ctx, portsrepo.TaskFilter{AssignedTo: memberID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks for member summary",
			slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to list member tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return &dto.MemberSummaryResponse{
		Member:  dto.ToMemberResponse(member),
		Tasks:   tasks,
		Summary: domain.SummarizeTasks(tasks, member.MoneyReceived),
	}, nil
}
