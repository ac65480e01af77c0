package dto

import (
	"github.com/projectdesk/pma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectValue is one bar of the admin dashboard's project-value chart.
type ProjectValue struct {
	ProjectName string          `json:"projectName"`
	FinalPrice  decimal.Decimal `json:"finalPrice"`
}

// AdminDashboardResponse aggregates the counts and earnings shown on
// the admin landing screen.
type AdminDashboardResponse struct {
	TotalProjects  int               `json:"totalProjects"`
	TotalClients   int               `json:"totalClients"`
	TotalMembers   int               `json:"totalMembers"`
	CompletedTasks int               `json:"completedTasks"`
	TotalEarnings  decimal.Decimal   `json:"totalEarnings"`
	RecentProjects []ProjectResponse `json:"recentProjects"`
	ProjectValues  []ProjectValue    `json:"projectValues"`
}

// MemberDashboardResponse is the team-member landing screen: own tasks
// plus the derived financial summary.
type MemberDashboardResponse struct {
	Tasks   []domain.Task      `json:"tasks"`
	Summary domain.TaskSummary `json:"summary"`
}
