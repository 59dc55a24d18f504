package model

import "time"

// Contact is a phone book entry owned by exactly one user. The same
// phone number may appear in many users' books, but only once per owner.
type Contact struct {
	ID          int       `json:"id"`
	UserID      int       `json:"-"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateContactRequest is used for creating a single contact
type CreateContactRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// BulkCreateContactsRequest imports a batch of contacts. Atomic selects
// all-or-nothing semantics; the default persists whatever passes and
// reports the rest as failures.
type BulkCreateContactsRequest struct {
	Contacts []CreateContactRequest `json:"contacts" binding:"required,min=1,dive"`
	Atomic   bool                   `json:"atomic"`
}

// BulkContactFailure describes one rejected entry of a non-atomic bulk import
type BulkContactFailure struct {
	Index       int    `json:"index"`
	PhoneNumber string `json:"phone_number"`
	Error       string `json:"error"`
}

// BulkCreateContactsResult is the outcome of a bulk import
type BulkCreateContactsResult struct {
	Created []Contact            `json:"created"`
	Failed  []BulkContactFailure `json:"failed,omitempty"`
}
