package entity

import (
	"time"
)

type Education struct {
	ID          string    `json:"id" firestore:"id"`
	School      string    `json:"school" firestore:"school"`
	Degree      string    `json:"degree" firestore:"degree"`
	Year        string    `json:"year" firestore:"year"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
