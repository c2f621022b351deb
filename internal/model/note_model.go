package model

import (
	"time"
)

type Note struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Note) TableName() string {
	return "notes"
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Note{},
	}
}
