package services_test

import (
	"context"
	"testing"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/core/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/projectdesk/pma_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo     *MockMemberRepository
	mockCredentialRepo *MockCredentialRepository
	mockTaskRepo       *MockTaskRepository
	service            portssvc.MemberSvcFacade
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockCredentialRepo = new(MockCredentialRepository)
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.service = services.NewMemberService(suite.mockMemberRepo, suite.mockCredentialRepo, suite.mockTaskRepo)
}

// --- CreateMember Tests ---

func (suite *MemberServiceTestSuite) TestCreateMember_CredentialFirst() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	userID := uuid.NewString()
	memberID := uuid.NewString()

	req := dto.CreateMemberRequest{
		Name:     "Devin Developer",
		Email:    "devin@example.com",
		Password: "initial-password",
		Role:     "developer",
		Position: "Backend",
	}

	suite.mockCredentialRepo.On("FindCredentialByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCredentialRepo.On("SaveCredential", ctx, mock.MatchedBy(func(cred domain.Credential) bool {
		return cred.Email == req.Email && utils.CheckPasswordHash(req.Password, cred.PasswordHash)
	})).Return(userID, nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx, mock.MatchedBy(func(m domain.TeamMember) bool {
		return m.UserID == userID && m.Role == domain.RoleDeveloper && m.Name == req.Name &&
			m.MoneyReceived.IsZero() && m.CreatedBy == creatorID
	})).Return(memberID, nil).Once()

	member, err := suite.service.CreateMember(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal(memberID, member.MemberID)
	suite.Equal(userID, member.UserID)
	suite.mockCredentialRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestCreateMember_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		Name:     "Devin Developer",
		Email:    "taken@example.com",
		Password: "initial-password",
		Role:     "developer",
	}
	existing := &domain.Credential{UserID: uuid.NewString(), Email: req.Email}

	suite.mockCredentialRepo.On("FindCredentialByEmail", ctx, req.Email).Return(existing, nil).Once()

	member, err := suite.service.CreateMember(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCredentialRepo.AssertNotCalled(suite.T(), "SaveCredential", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestCreateMember_InvalidRole() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		Name:     "Devin Developer",
		Email:    "devin@example.com",
		Password: "initial-password",
		Role:     "superuser",
	}

	member, err := suite.service.CreateMember(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MemberServiceTestSuite) TestCreateMember_ProfileSaveFailureLeavesCredential() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateMemberRequest{
		Name:     "Devin Developer",
		Email:    "devin@example.com",
		Password: "initial-password",
		Role:     "developer",
	}

	suite.mockCredentialRepo.On("FindCredentialByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCredentialRepo.On("SaveCredential", ctx, mock.AnythingOfType("domain.Credential")).Return(userID, nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx, mock.AnythingOfType("domain.TeamMember")).Return("", assert.AnError).Once()

	member, err := suite.service.CreateMember(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(member)
	// The credential write is never rolled back
	suite.mockCredentialRepo.AssertExpectations(suite.T())
}

// --- UpdateMember Tests ---

func (suite *MemberServiceTestSuite) TestUpdateMember_PartialFields() {
	ctx := context.Background()
	memberID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.TeamMember{
		MemberID:      memberID,
		Name:          "Old Name",
		Email:         "dev@example.com",
		Role:          domain.RoleDeveloper,
		MoneyReceived: decimal.NewFromInt(100),
	}
	newName := "New Name"
	newMoney := decimal.NewFromInt(250)
	req := dto.UpdateMemberRequest{Name: &newName, MoneyReceived: &newMoney}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.TeamMember) bool {
		return m.Name == newName && m.MoneyReceived.Equal(newMoney) &&
			m.Email == "dev@example.com" && m.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, memberID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal(newName, member.Name)
	suite.True(member.MoneyReceived.Equal(newMoney))
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_EmptyRequestChangesNothing() {
	ctx := context.Background()
	memberID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.TeamMember{
		MemberID:              memberID,
		Name:                  "Old Name",
		Email:                 "dev@example.com",
		Role:                  domain.RoleDeveloper,
		Skills:                "Go, MongoDB",
		PhoneNumber:           "555-0101",
		Position:              "Backend Developer",
		JoiningDate:           "2024-03-01",
		Bio:                   "Ships things",
		UserID:                uuid.NewString(),
		MoneyReceived:         decimal.NewFromInt(100),
		PasswordResetRequired: true,
	}
	// Value copy: the service edits the fetched member in place.
	before := *existing

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()
	// An update with no fields set writes the member back untouched,
	// audit stamps aside.
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.TeamMember) bool {
		return m.Name == before.Name &&
			m.Email == before.Email &&
			m.Role == before.Role &&
			m.Skills == before.Skills &&
			m.PhoneNumber == before.PhoneNumber &&
			m.Position == before.Position &&
			m.JoiningDate == before.JoiningDate &&
			m.Bio == before.Bio &&
			m.UserID == before.UserID &&
			m.MoneyReceived.Equal(before.MoneyReceived) &&
			m.PasswordResetRequired == before.PasswordResetRequired &&
			m.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(before.Name, member.Name)
	suite.True(member.MoneyReceived.Equal(before.MoneyReceived))
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_InvalidRole() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.TeamMember{MemberID: memberID, Role: domain.RoleDeveloper}
	badRole := "overlord"
	req := dto.UpdateMemberRequest{Role: &badRole}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()

	member, err := suite.service.UpdateMember(ctx, memberID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "UpdateMember", mock.Anything, mock.Anything)
}

// --- MemberSummary Tests ---

func (suite *MemberServiceTestSuite) TestMemberSummary_DerivesFromTasks() {
	ctx := context.Background()
	memberID := uuid.NewString()
	member := &domain.TeamMember{
		MemberID:      memberID,
		Name:          "Devin Developer",
		Role:          domain.RoleDeveloper,
		MoneyReceived: decimal.NewFromInt(120),
	}
	tasks := []domain.Task{
		{TaskID: uuid.NewString(), AssignedTo: memberID, Status: domain.StatusCompleted, Rate: decimal.NewFromInt(100)},
		{TaskID: uuid.NewString(), AssignedTo: memberID, Status: domain.StatusCompleted, Rate: decimal.NewFromInt(75)},
		{TaskID: uuid.NewString(), AssignedTo: memberID, Status: domain.StatusPending, Rate: decimal.NewFromInt(50)},
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(member, nil).Once()
	suite.mockTaskRepo.On("FindTasks", ctx, portsrepo.TaskFilter{AssignedTo: memberID}).Return(tasks, nil).Once()

	resp, err := suite.service.MemberSummary(ctx, memberID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(2, resp.Summary.TotalCompleted)
	suite.Equal(1, resp.Summary.TotalPending)
	suite.True(resp.Summary.TotalEarned.Equal(decimal.NewFromInt(175)))
	suite.True(resp.Summary.TotalBalance.Equal(decimal.NewFromInt(55)))
	suite.Len(resp.Tasks, 3)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestMemberSummary_NoTasks() {
	ctx := context.Background()
	memberID := uuid.NewString()
	member := &domain.TeamMember{MemberID: memberID, MoneyReceived: decimal.NewFromInt(40)}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(member, nil).Once()
	suite.mockTaskRepo.On("FindTasks", ctx, portsrepo.TaskFilter{AssignedTo: memberID}).Return(nil, nil).Once()

	resp, err := suite.service.MemberSummary(ctx, memberID)

	suite.Require().NoError(err)
	suite.NotNil(resp.Tasks)
	suite.Empty(resp.Tasks)
	suite.True(resp.Summary.TotalEarned.IsZero())
	suite.True(resp.Summary.TotalBalance.Equal(decimal.NewFromInt(-40)))
}

// --- ListMembers Tests ---

func (suite *MemberServiceTestSuite) TestListMembers_Empty() {
	ctx := context.Background()
	suite.mockMemberRepo.On("FindMembers", ctx).Return(nil, nil).Once()

	members, err := suite.service.ListMembers(ctx)

	suite.Require().NoError(err)
	suite.NotNil(members)
	suite.Empty(members)
}

// --- DeleteMember Tests ---

func (suite *MemberServiceTestSuite) TestDeleteMember_NotFound() {
	ctx := context.Background()
	memberID := uuid.NewString()
	suite.mockMemberRepo.On("DeleteMember", ctx, memberID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteMember(ctx, memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
