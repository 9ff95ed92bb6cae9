package models

import (
	"time"
)

// Photo is a shared gallery picture. ImageKey addresses the blob in
// the storage backend; deleting a Photo must delete that blob too.
type Photo struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ImageKey    string `gorm:"size:255;not null"`
	Description string `gorm:"size:500"`
	UploaderID  uint   `gorm:"not null;index"`
	Uploader    User   `gorm:"foreignKey:UploaderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

// TableName overrides the table name for Photo
func (Photo) TableName() string {
	return "photos"
}
