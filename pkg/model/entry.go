package model

// Entry is a directory entry. PhoneNumber always holds the normalized,
// digit-only form; a unique index on the column enforces at most one entry
// per normalized number.
type Entry struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FullName    string `gorm:"column:full_name"`
	PhoneNumber string `gorm:"column:phone_number"`
}

func (Entry) TableName() string {
	return "phonebook"
}
