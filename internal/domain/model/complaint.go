package model

import "time"

// Complaint is a customer contact-form entry.
type Complaint struct {
	ID        int64
	Name      string
	Rut       string
	Email     string
	Phone     string
	Problem   string
	Detail    string
	CreatedAt time.Time
}
