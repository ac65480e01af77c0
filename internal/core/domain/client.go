package domain

// Client is a customer record. Clients have no relationships of their
// own; projects reference them by id with no integrity enforcement.
type Client struct {
	ClientID        string `json:"clientID" bson:"_id,omitempty"`
	ClientName      string `json:"clientName" bson:"clientName"`
	CompanyName     string `json:"companyName" bson:"companyName"`
	GSTIN           string `json:"gstin" bson:"gstin"`
	Email           string `json:"email" bson:"email"`
	ContactPersonNo string `json:"contactPersonNo" bson:"contactPersonNo"`
	OfficeNo        string `json:"officeNo" bson:"officeNo"`
	OfficeAddress   string `json:"officeAddress" bson:"officeAddress"`
	AuditFields     `bson:",inline"`
}
