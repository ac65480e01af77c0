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
)

// clientService implements the ClientSvcFacade.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()

	client := domain.Client{
		ClientName:      req.ClientName,
		CompanyName:     req.CompanyName,
		GSTIN:           req.GSTIN,
		Email:           req.Email,
		ContactPersonNo: req.ContactPersonNo,
		OfficeNo:        req.OfficeNo,
		OfficeAddress:   req.OfficeAddress,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	clientID, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "Failed to save client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	client.ClientID = clientID

	s.LogInfo(ctx, "Client created", slog.String("client_id", clientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID",
				slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		client.ClientName = *req.ClientName
	}
	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.GSTIN != nil {
		client.GSTIN = *req.GSTIN
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.ContactPersonNo != nil {
		client.ContactPersonNo = *req.ContactPersonNo
	}
	if req.OfficeNo != nil {
		client.OfficeNo = *req.OfficeNo
	}
	if req.OfficeAddress != nil {
		client.OfficeAddress = *req.OfficeAddress
	}

	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes the client record. Projects referencing it keep
// their dangling clientId.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete client",
				slog.String("client_id", clientID))
		}
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
