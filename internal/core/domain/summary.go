package domain

import "github.com/shopspring/decimal"

// TaskSummary is the derived financial view of one member's task list:
// counts per status plus the earned/received/balance figures.
type TaskSummary struct {
	TotalAttended      int             `json:"totalAttended"`
	TotalPending       int             `json:"totalPending"`
	TotalInProgress    int             `json:"totalInProgress"`
	TotalCompleted     int             `json:"totalCompleted"`
	TotalEarned        decimal.Decimal `json:"totalEarned"`
	TotalMoneyReceived decimal.Decimal `json:"totalMoneyReceived"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
}

// SummarizeTasks derives a TaskSummary from a member's tasks and their
// stored money-received total. Pure and deterministic: the counts
// partition the input, totalEarned sums rate over completed tasks and
// totalBalance is totalEarned minus moneyReceived.
func SummarizeTasks(tasks []Task, moneyReceived decimal.Decimal) TaskSummary {
	s := TaskSummary{
		TotalEarned:        decimal.Zero,
		TotalMoneyReceived: moneyReceived,
	}
	for _, t := range tasks {
		switch t.Status {
		case StatusAttended:
			s.TotalAttended++
		case StatusPending:
			s.TotalPending++
		case StatusInProgress:
			s.TotalInProgress++
		case StatusCompleted:
			s.TotalCompleted++
			s.TotalEarned = s.TotalEarned.Add(t.Rate)
		}
	}
	s.TotalBalance = s.TotalEarned.Sub(moneyReceived)
	return s
}
