package dtos

import "github.com/dkarpov/hirehub/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=seeker employer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest arrives as multipart form data because the avatar
// upload rides along with it. Pointer fields distinguish "not submitted"
// from "submitted empty" so a partial edit leaves the rest untouched.
type UpdateProfileRequest struct {
	Name     *string `form:"name"`
	Phone    *string `form:"phone"`
	Location *string `form:"location"`
	Bio      *string `form:"bio"`

	Skills     *string `form:"skills"`
	Experience *string `form:"experience"`

	CompanyName        *string `form:"company_name"`
	CompanyDescription *string `form:"company_description"`
	Website            *string `form:"website"`
}

// AccountResponse is the client-facing view of an account. The credential
// hash never leaves the service layer.
type AccountResponse struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Avatar   string      `json:"avatar,omitempty"`
	Phone    string      `json:"phone,omitempty"`
	Location string      `json:"location,omitempty"`
	Bio      string      `json:"bio,omitempty"`

	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Website            string `json:"website,omitempty"`
}

func NewAccountResponse(a *models.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Email:              a.Email,
		Role:               a.Role,
		Avatar:             a.Avatar,
		Phone:              a.Phone,
		Location:           a.Location,
		Bio:                a.Bio,
		Skills:             a.Skills,
		Experience:         a.Experience,
		CompanyName:        a.CompanyName,
		CompanyDescription: a.CompanyDescription,
		Website:            a.Website,
	}
}
