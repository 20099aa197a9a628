package services

import (
	"context"
	"encoding/json"

	"orbit/internal/logger"
	"orbit/internal/models"

	"gorm.io/gorm"
)

// AuditEntry describes one audited operation.
type AuditEntry struct {
	UserID     uint
	Action     string
	Resource   string
	ResourceID uint
	IP         string
	// Fields names the request fields an update carried.
	Fields []string
}

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log stores entry. Failures are logged and never returned.
func (s *auditService) Log(ctx context.Context, entry AuditEntry) {
	row := &models.AuditLog{
		UserID:       entry.UserID,
		Action:       entry.Action,
		ResourceType: entry.Resource,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.IP,
	}

	if len(entry.Fields) > 0 {
		data, err := json.Marshal(map[string][]string{"fields": entry.Fields})
		if err != nil {
			logger.Get().Errorw("failed to marshal audit fields", "error", err, "action", entry.Action)
		} else {
			changes := string(data)
			row.Changes = &changes
		}
	}

	// Written even if the client has disconnected.
	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(row).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", entry.UserID,
			"action", entry.Action,
			"resource_type", entry.Resource,
			"resource_id", entry.ResourceID,
		)
	}
}
