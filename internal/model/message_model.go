package model

import (
	"time"
)

type Message struct {
	Id        uint      `gorm:"primaryKey"`
	ChatId    uint      `gorm:"not null;index"`
	Sender    string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
