package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Location string `json:"location"`
}
