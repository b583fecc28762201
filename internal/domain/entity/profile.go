package entity

import (
	"time"
)

// ProfileDocID is the fixed identifier of the singleton profile document.
const ProfileDocID = "main"

type SocialLinks struct {
	Github   string `json:"github,omitempty" firestore:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Website  string `json:"website,omitempty" firestore:"website,omitempty"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
}

type Profile struct {
	ID        string      `json:"id" firestore:"id"`
	Name      string      `json:"name" firestore:"name"`
	Tagline   string      `json:"tagline" firestore:"tagline"`
	Summary   string      `json:"summary" firestore:"summary"`
	Location  string      `json:"location" firestore:"location"`
	Email     string      `json:"email" firestore:"email"`
	Phone     string      `json:"phone" firestore:"phone"`
	Resume    string      `json:"resume,omitempty" firestore:"resume,omitempty"`
	Social    SocialLinks `json:"social" firestore:"social"`
	UpdatedAt time.Time   `json:"updated_at" firestore:"updatedAt"`
}
