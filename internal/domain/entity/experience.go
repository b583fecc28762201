package entity

import (
	"time"
)

// Experience dates are free text ("Jan 2022", "Present"); ordering is
// driven by the Order field, descending, not by date parsing.
type Experience struct {
	ID          string    `json:"id" firestore:"id"`
	Company     string    `json:"company" firestore:"company"`
	Role        string    `json:"role" firestore:"role"`
	Start       string    `json:"start" firestore:"start"`
	End         string    `json:"end" firestore:"end"`
	Description string    `json:"description" firestore:"description"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
