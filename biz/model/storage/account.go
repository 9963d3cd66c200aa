package storage

// AccountRecord is the single persisted entity: one row per account
// name. The name is the only external identifier, so it doubles as the
// primary key; salt and hash are replaced together on every credential
// write.
type AccountRecord struct {
	Name string `gorm:"size:60;primaryKey;not null"`
	Salt string `gorm:"size:10;not null"`
	Hash string `gorm:"not null"`
}

func (AccountRecord) TableName() string {
	return "users"
}
