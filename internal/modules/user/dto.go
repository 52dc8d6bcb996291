package user

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" validate:"required"`
	NewPassword     string `json:"newPassword" binding:"required" validate:"required,senha"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Profession *string `json:"profession,omitempty"`
	Role       *string `json:"role,omitempty"`
}
