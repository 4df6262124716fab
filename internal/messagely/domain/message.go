package domain

import "time"

type Message struct {
	ID           string // ULID
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       *time.Time // never set; read receipts are not implemented
}

// SentMessage is a message from a sender's point of view, carrying the
// recipient's profile.
type SentMessage struct {
	ID     string
	ToUser Contact
	Body   string
	SentAt time.Time
	ReadAt *time.Time
}

// ReceivedMessage is a message from a recipient's point of view, carrying
// the sender's profile.
type ReceivedMessage struct {
	ID       string
	FromUser Contact
	Body     string
	SentAt   time.Time
	ReadAt   *time.Time
}
