package entity

import (
	"time"
)

type Note struct {
	Id        int64
	Title     string
	Content   string
	CreatedAt time.Time
}
