package models

// Resource types named in the audit trail.
const (
	ResourceUser = "user"
	ResourceMood = "mood"
)

// AuditLog is one row of the audit trail: who did what to which user or mood.
type AuditLog struct {
	Base
	// UserID is the account the change belongs to. It is kept after that
	// account is deleted.
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	// Changes is a JSON object listing the request fields that were sent,
	// never their values.
	Changes *string `json:"changes,omitempty"`
}
