package entity

import (
	"time"
)

type Project struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Image       string    `json:"image,omitempty" firestore:"image,omitempty"`
	Tags        []string  `json:"tags" firestore:"tags"`
	Github      string    `json:"github" firestore:"github"`
	Live        string    `json:"live" firestore:"live"`
	AIHint      string    `json:"ai_hint,omitempty" firestore:"aiHint,omitempty"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
