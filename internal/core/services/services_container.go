package services

import (
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	blobStore portssvc.BlobStore,
	mailSender portssvc.MailSender,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.CredentialRepo, repos.MemberRepo, mailSender)
	container.Member = NewMemberService(repos.MemberRepo, repos.CredentialRepo, repos.TaskRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Project = NewProjectService(repos.ProjectRepo, blobStore)
	container.Task = NewTaskService(repos.TaskRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.TaskRepo)
	container.Dashboard = NewDashboardService(
		repos.MemberRepo,
		repos.ClientRepo,
		repos.ProjectRepo,
		repos.TaskRepo,
		repos.PaymentRepo,
	)

	return container
}
