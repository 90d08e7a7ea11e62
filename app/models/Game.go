package models

import "time"

// Session is the database row for one chat's game.
type Session struct {
	Id      string
	ChatId  int64
	Status  string // "in progress" or "finished"
	Winner  string
	Started time.Time
}

// Feedback is a stored /feedback submission.
type Feedback struct {
	Id      int64
	UserId  int64
	Name    string
	Text    string
	Created time.Time
}
