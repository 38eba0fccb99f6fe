package entity

import (
	"time"
)

type Chat struct {
	Id        uint
	Title     string
	CreatedAt time.Time
}
