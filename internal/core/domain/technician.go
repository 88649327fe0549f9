package domain

import "time"

// Specialization is a named technician skill category, deduplicated by name:
// provisioning the same name twice reuses the existing record.
type Specialization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact is a phone entry owned by exactly one user.
type Contact struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
	Label  string `json:"label"`
}

// TechnicianRecord is the roster projection: a technician user joined with
// their specialization and contacts.
type TechnicianRecord struct {
	ID             string     `json:"id"`
	User           PublicUser `json:"user"`
	Specialization string     `json:"specialization"`
	Contacts       []Contact  `json:"contacts"`
	CreatedAt      time.Time  `json:"created_at"`
}
