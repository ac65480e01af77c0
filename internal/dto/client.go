package dto

import "github.com/projectdesk/pma_backend/internal/core/domain"

// CreateClientRequest carries a new client record.
type CreateClientRequest struct {
	ClientName      string `json:"clientName" binding:"required"`
	CompanyName     string `json:"companyName"`
	GSTIN           string `json:"gstin"`
	Email           string `json:"email" binding:"omitempty,email"`
	ContactPersonNo string `json:"contactPersonNo"`
	OfficeNo        string `json:"officeNo"`
	OfficeAddress   string `json:"officeAddress"`
}

// UpdateClientRequest merges non-nil fields into an existing client.
type UpdateClientRequest struct {
	ClientName      *string `json:"clientName"`
	CompanyName     *string `json:"companyName"`
	GSTIN           *string `json:"gstin"`
	Email           *string `json:"email"`
	ContactPersonNo *string `json:"contactPersonNo"`
	OfficeNo        *string `json:"officeNo"`
	OfficeAddress   *string `json:"officeAddress"`
}

// ListClientsResponse wraps the full collection snapshot.
type ListClientsResponse struct {
	Clients []domain.Client `json:"clients"`
}
