package domain

import "time"

const StatusPendingReview = "Pending Review"

// UserProfile is the submitter snapshot taken when a project is created.
type UserProfile struct {
	Name   string `firestore:"name" json:"name"`
	Email  string `firestore:"email" json:"email"`
	Avatar string `firestore:"avatar" json:"avatar"`
}

// Project is a community showcase submission. Projects are append-only.
type Project struct {
	ID          string      `firestore:"-" json:"id"`
	Title       string      `firestore:"title" json:"title"`
	Description string      `firestore:"description" json:"description"`
	UserID      string      `firestore:"userId" json:"user_id"`
	UserProfile UserProfile `firestore:"userProfile" json:"user_profile"`
	Status      string      `firestore:"status" json:"status"`
	CreatedAt   time.Time   `firestore:"createdAt" json:"created_at"`
}
