package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Attachment is a blob-store document reference: the URL the file was
// stored under plus the original filename for display.
type Attachment struct {
	URL  string `json:"url" bson:"url"`
	Name string `json:"name" bson:"name"`
}

// Project is a client engagement. ProjectCode is assigned once at
// creation and never changes.
type Project struct {
	ProjectID      string          `json:"projectID" bson:"_id,omitempty"`
	ProjectCode    string          `json:"projectCode" bson:"projectCode"`
	ProjectName    string          `json:"projectName" bson:"projectName"`
	Description    string          `json:"description" bson:"description"`
	ClientID       string          `json:"clientID" bson:"clientId"`
	Quotation      decimal.Decimal `json:"quotation" bson:"quotation"`
	FinalPrice     decimal.Decimal `json:"finalPrice" bson:"finalPrice"`
	RequirementDoc *Attachment     `json:"requirementDoc,omitempty" bson:"requirementDoc,omitempty"`
	ClientDoc      *Attachment     `json:"clientDoc,omitempty" bson:"clientDoc,omitempty"`
	AuditFields    `bson:",inline"`
}

// NewProjectCode derives the human-readable code from the creation
// instant, e.g. PRJ-1717171717171.
func NewProjectCode(now time.Time) string {
	return fmt.Sprintf("PRJ-%d", now.UnixMilli())
}
