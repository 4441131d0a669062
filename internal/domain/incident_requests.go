package domain

type CreateIncidentRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category" validate:"required"`
	AffectedAccess string   `json:"affected_access"`
	Severity       Severity `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH"`
	Urgent         bool     `json:"urgent"`
	Temporary      bool     `json:"temporary"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,lat"`
	Lng            *float64 `json:"lng,omitempty" validate:"omitempty,lng,required_with=Lat"`
	PhotoURI       *string  `json:"photo_uri,omitempty"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING ACCEPTED IN_REVIEW RESOLVED REJECTED"`
	Remark string `json:"remark"`
}

type RegisterRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required,min=4"`
	Role   Role   `json:"role" validate:"omitempty,oneof=CITIZEN ADMIN"`
}

type LoginRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required"`
}
