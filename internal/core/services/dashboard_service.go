package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// recentProjectCount caps the admin dashboard's recent-projects list.
const recentProjectCount = 5

// dashboardService implements the DashboardSvcFacade by aggregating
// over the other repositories. Everything is computed on read; nothing
// is cached or denormalized.
type dashboardService struct {
	BaseService
	memberRepo  portsrepo.MemberRepository
	clientRepo  portsrepo.ClientRepository
	projectRepo portsrepo.ProjectRepository
	taskRepo    portsrepo.TaskRepository
	paymentRepo portsrepo.PaymentRepository
}

// NewDashboardService creates a new dashboard service with the provided dependencies
func NewDashboardService(
	memberRepo portsrepo.MemberRepository,
	clientRepo portsrepo.ClientRepository,
	projectRepo portsrepo.ProjectRepository,
	taskRepo portsrepo.TaskRepository,
	paymentRepo portsrepo.PaymentRepository,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		memberRepo:  memberRepo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// AdminDashboard aggregates the counts, earnings and project charts
// for the admin landing screen.
func (s *dashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for dashboard")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for dashboard")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	members, err := s.memberRepo.FindMembers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members for dashboard")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	completedTasks, err := s.taskRepo.FindTasks(ctx, portsrepo.TaskFilter{Status: domain.StatusCompleted})
	if err != nil {
		s.LogError(ctx, err, "Failed to list completed tasks for dashboard")
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	received, err := s.paymentRepo.FindPaymentsByType(ctx, domain.PaymentReceived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list received payments for dashboard")
		return nil, fmt.Errorf("failed to list received payments: %w", err)
	}

	totalEarnings := decimal.Zero
	for _, p := range received {
		totalEarnings = totalEarnings.Add(p.Amount)
	}

	// Newest first for the recent-projects strip
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	recent := sorted
	if len(recent) > recentProjectCount {
		recent = recent[:recentProjectCount]
	}

	projectValues := make([]dto.ProjectValue, 0, len(projects))
	for _, p := range projects {
		projectValues = append(projectValues, dto.ProjectValue{
			ProjectName: p.ProjectName,
			FinalPrice:  p.FinalPrice,
		})
	}

	return &dto.AdminDashboardResponse{
		TotalProjects:  len(projects),
		TotalClients:   len(clients),
		TotalMembers:   len(members),
		CompletedTasks: len(completedTasks),
		TotalEarnings:  totalEarnings,
		RecentProjects: dto.ToListProjectsResponse(recent).Projects,
		ProjectValues:  projectValues,
	}, nil
}

// MemberDashboard is the team-member landing screen: own tasks plus
// the derived financial summary.
func (s *dashboardService) MemberDashboard(ctx context.Context, userID string) (*dto.MemberDashboardResponse, error) {
	member, err := s.memberRepo.FindMemberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No profile yet: an empty dashboard, not an error
			return &dto.MemberDashboardResponse{
				Tasks:   []domain.Task{},
				Summary: domain.SummarizeTasks(nil, decimal.Zero),
			}, nil
		}
		s.LogError(ctx, err, "Failed to resolve member for dashboard",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to resolve member: %w", err)
	}

	tasks, err := s.taskRepo.FindTasks(ctx, portsrepo.TaskFilter{AssignedTo: member.MemberID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list member tasks for dashboard",
			slog.String("member_id", member.MemberID))
		return nil, fmt.Errorf("failed to list member tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return &dto.MemberDashboardResponse{
		Tasks:   tasks,
		Summary: domain.SummarizeTasks(tasks, member.MoneyReceived),
	}, nil
}
