package store

import (
	"log"

	"salestrack/internal/models"
)

// audit records a write to the audit trail. Best-effort: a failed audit write
// is logged and never fails the operation that triggered it.
func (s *Store) audit(userID *uint, action, table string, rowID uint, message string) {
	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		TableName: table,
		RowID:     rowID,
		Message:   message,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("audit write failed (%s %s %d): %v", action, table, rowID, err)
	}
}
