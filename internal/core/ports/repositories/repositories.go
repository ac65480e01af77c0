package repositories

import (
	"context"
	"time"

	"github.com/projectdesk/pma_backend/internal/core/domain"
)

// MemberRepository persists team-member profile documents.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.TeamMember) (string, error)
	FindMemberByID(ctx context.Context, memberID string) (*domain.TeamMember, error)
	// FindMemberByUserID resolves the credential back-reference; returns
	// the first match when more than one document references the same
	// credential.
	FindMemberByUserID(ctx context.Context, userID string) (*domain.TeamMember, error)
	FindMembers(ctx context.Context) ([]domain.TeamMember, error)
	UpdateMember(ctx context.Context, member domain.TeamMember) error
	DeleteMember(ctx context.Context, memberID string) error
}

// CredentialRepository persists identity-provider credentials.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, cred domain.Credential) (string, error)
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
	FindCredentialByID(ctx context.Context, userID string) (*domain.Credential, error)
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error
	ClearResetToken(ctx context.Context, userID string) error
}

// ClientRepository persists client documents.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) (string, error)
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	FindClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// ProjectRepository persists project documents.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) (string, error)
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	FindProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// TaskRepository persists task documents. Filters are simple equality
// matches; empty values mean no filter.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task) (string, error)
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	FindTasks(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) error
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskFilter narrows a task listing by equality.
type TaskFilter struct {
	AssignedTo string
	ProjectID  string
	Status     domain.TaskStatus
}

// PaymentRepository persists payment documents. Payments have no
// update operation; they are immutable once created.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) (string, error)
	FindPayments(ctx context.Context) ([]domain.Payment, error)
	FindPaymentsByType(ctx context.Context, t domain.PaymentType) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

// RepositoryProvider bundles the concrete repositories for injection.
type RepositoryProvider struct {
	MemberRepo     MemberRepository
	CredentialRepo CredentialRepository
	ClientRepo     ClientRepository
	ProjectRepo    ProjectRepository
	TaskRepo       TaskRepository
	PaymentRepo    PaymentRepository
}
