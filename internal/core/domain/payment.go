package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentType is the direction of a payment: received from a client or
// paid out to a team member.
type PaymentType string

const (
	PaymentReceived PaymentType = "received"
	PaymentPaid     PaymentType = "paid"
)

// ParsePaymentType validates a payment type at the write boundary.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentReceived, PaymentPaid:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("unrecognized payment type %q", s)
}

// Payment is immutable once created; the only mutation is deletion.
// RecipientID and TaskID are set only on payments to a team member.
type Payment struct {
	PaymentID   string          `json:"paymentID" bson:"_id,omitempty"`
	ProjectID   string          `json:"projectID" bson:"projectId"`
	Amount      decimal.Decimal `json:"amount" bson:"amount"`
	Date        string          `json:"date" bson:"date"`
	Description string          `json:"description" bson:"description"`
	Type        PaymentType     `json:"type" bson:"type"`
	RecipientID string          `json:"recipientID,omitempty" bson:"recipientId,omitempty"`
	TaskID      string          `json:"taskID,omitempty" bson:"taskId,omitempty"`
	AuditFields `bson:",inline"`
}
