package entity

import (
	"time"
)

// Sender is a closed set: every message is attributed to either the end
// user or the automated responder.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

type Message struct {
	Id        uint
	ChatId    uint
	Sender    Sender
	Content   string
	CreatedAt time.Time
}
