package model

import "time"

type RSVP struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Attending bool      `db:"attending"`
	Allergies *string   `db:"allergies"`
	CreatedAt time.Time `db:"created_at"`
}

type RSVPPatch struct {
	Attending *bool
	Allergies *string
}

type Info struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type InfoPatch struct {
	Title   *string
	Content *string
}

type FAQ struct {
	ID        int64     `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	CreatedAt time.Time `db:"created_at"`
}

type FAQPatch struct {
	Question *string
	Answer   *string
}
