package model

import (
	"time"
)

type Chat struct {
	Id        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null;default:'New Chat'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Messages  []Message `gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE"`
}

func (Chat) TableName() string {
	return "chats"
}
