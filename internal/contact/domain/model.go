package domain

import "time"

const StatusNew = "new"

// Message is a contact-form submission. Written once, never read back.
type Message struct {
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Subject   string    `firestore:"subject" json:"subject"`
	Message   string    `firestore:"message" json:"message"`
	Status    string    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
}
