package entity

import (
	"time"
)

type FileMetadata struct {
	ID          string    `json:"id" firestore:"id"`
	Filename    string    `json:"filename" firestore:"filename"`
	URL         string    `json:"url" firestore:"url"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	Folder      string    `json:"folder" firestore:"folder"`
	Size        int64     `json:"size" firestore:"size"`
	UploadedAt  time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}
