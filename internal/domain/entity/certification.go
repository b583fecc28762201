package entity

import (
	"time"
)

type Certification struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Issuer    string    `json:"issuer" firestore:"issuer"`
	Date      string    `json:"date" firestore:"date"`
	Link      string    `json:"link,omitempty" firestore:"link,omitempty"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
