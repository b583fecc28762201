package entity

import (
	"time"
)

// Testimonial is publicly visible only once Approved is true; pending
// entries stay in the admin review queue.
type Testimonial struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Role      string    `json:"role" firestore:"role"`
	Message   string    `json:"message" firestore:"message"`
	Rating    int       `json:"rating" firestore:"rating"`
	Approved  bool      `json:"approved" firestore:"approved"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
