package model

// AuditRecord is one append-only audit trail row. Timestamp is the request
// start time in ISO-8601 text, matching the reference schema.
type AuditRecord struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp string `gorm:"column:timestamp"`
	Action    string `gorm:"column:action"`
	Details   string `gorm:"column:details"`
}

func (AuditRecord) TableName() string {
	return "audit_log"
}
