package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// reportRequest is the payload for creating and updating reports. Every
// field is required; the evaluator may still override TechnicianName for
// technician actors.
type reportRequest struct {
	Title          string `json:"title"           validate:"required"`
	Description    string `json:"description"     validate:"required"`
	TechnicianName string `json:"technician_name" validate:"required"`
	Date           string `json:"date"            validate:"required"`
	Status         string `json:"status"          validate:"required,oneof=pending in_progress completed"`
}

// provisionRequest is the payload for onboarding a technician.
type provisionRequest struct {
	Name           string           `json:"name"           validate:"required"`
	Email          string           `json:"email"          validate:"required,email"`
	Password       string           `json:"password"       validate:"required,min=8"`
	Specialization string           `json:"specialization" validate:"required"`
	Phone          string           `json:"phone,omitempty"`
	Contacts       []contactRequest `json:"contacts,omitempty"`
	Role           string           `json:"role,omitempty" validate:"omitempty,oneof=admin technician"`
}

type contactRequest struct {
	Phone string `json:"phone" validate:"required"`
	Label string `json:"label,omitempty"`
}
