package model

import "time"

type Comment struct {
	ID        int64
	MediaID   int64
	UserID    int64
	UserName  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Comment) OwnerID() int64 { return c.UserID }
