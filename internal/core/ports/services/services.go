package services

import (
	"context"
	"io"

	"github.com/projectdesk/pma_backend/internal/core/domain"
	"github.com/projectdesk/pma_backend/internal/dto"
)

// AuthSvcFacade covers sign-in, session resolution and the three
// password paths (self-service, emailed reset, admin overwrite).
type AuthSvcFacade interface {
	// Login authenticates a credential and resolves it to a session.
	// Identities with no matching team-member profile are rejected.
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	// ResolveSession re-runs profile resolution for an authenticated
	// credential. Never fails open: lookup errors yield a non-admin
	// session.
	ResolveSession(ctx context.Context, userID string) domain.Session
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	// SetMemberPassword overwrites another identity's password without
	// the old one. memberID names the profile, not the credential.
	SetMemberPassword(ctx context.Context, memberID, newPassword string) error
}

// MemberSvcFacade manages team-member profiles and their credentials.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.TeamMember, error)
	GetMemberByID(ctx context.Context, memberID string) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]domain.TeamMember, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, updaterUserID string) (*domain.TeamMember, error)
	DeleteMember(ctx context.Context, memberID string) error
	// MemberSummary returns the member's tasks with the derived
	// financial summary.
	MemberSummary(ctx context.Context, memberID string) (*dto.MemberSummaryResponse, error)
}

// ClientSvcFacade manages client records.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}

// ProjectSvcFacade manages projects and their attachments.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// TaskSvcFacade manages tasks. UpdateTaskStatus is the only mutation
// available to non-admin members, and only on their own tasks.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error)
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, params dto.ListTasksParams) ([]domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error)
	// UpdateTaskStatus changes only the status. Ownership is enforced
	// against memberID unless asAdmin is set; an empty memberID never
	// widens access.
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus, memberID string, asAdmin bool) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// PaymentSvcFacade manages payments and the pay-a-member narrowing.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
	// PayableTasks returns the selected member's completed tasks for
	// the payment pre-fill.
	PayableTasks(ctx context.Context, memberID string) ([]dto.PayableTask, error)
}

// DashboardSvcFacade produces the two landing screens.
type DashboardSvcFacade interface {
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	MemberDashboard(ctx context.Context, userID string) (*dto.MemberDashboardResponse, error)
}

// BlobStore is the file-storage collaborator: store bytes under a key,
// get back a retrievable URL.
type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader) error
	DownloadURL(key string) string
}

// MailSender delivers outbound mail. Failures are terminal for the
// triggering action; nothing retries.
type MailSender interface {
	Send(to, subject, body string) error
}

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	Member    MemberSvcFacade
	Client    ClientSvcFacade
	Project   ProjectSvcFacade
	Task      TaskSvcFacade
	Payment   PaymentSvcFacade
	Dashboard DashboardSvcFacade
}
