package entity

import (
	"time"
)

// SkillGroup is a named category of skills; Icon names the UI icon
// that the frontend maps to a component.
type SkillGroup struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Icon      string    `json:"icon" firestore:"icon"`
	Skills    []string  `json:"skills" firestore:"skills"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
