package dto

// UpdateUserRequest is the self-service profile update. The mobile number
// comes from the token; omitted fields keep their stored values.
type UpdateUserRequest struct {
	Name *string `form:"name" binding:"omitempty,min=2,max=100"`
}

// --- Reporter ---

type CreateReporterRequest struct {
	Name         string `form:"name" binding:"required,min=2,max=100"`
	State        string `form:"state" binding:"required"`
	District     string `form:"district" binding:"required"`
	Constituency string `form:"constituency"`
	Mandal       string `form:"mandal"`
	Status       string `form:"status" binding:"omitempty,oneof=WAITING APPROVED REJECTED"`
	UserID       int64  `form:"userId" binding:"required,min=1"`
}

type UpdateReporterRequest struct {
	Name         *string `form:"name" binding:"omitempty,min=2,max=100"`
	State        *string `form:"state"`
	District     *string `form:"district"`
	Constituency *string `form:"constituency"`
	Mandal       *string `form:"mandal"`
	Status       *string `form:"status" binding:"omitempty,oneof=WAITING APPROVED REJECTED"`
}
