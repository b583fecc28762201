package entity

import (
	"time"
)

type ContactMessage struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Message   string    `json:"message" firestore:"message"`
	Notified  bool      `json:"notified" firestore:"notified"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
