package dto

type RegisterRequestDTO struct {
	FirstName string `json:"first_name" validate:"max=100" example:"Ana"`
	LastName  string `json:"last_name" validate:"max=100" example:"Pérez"`
	Username  string `json:"username" validate:"required,min=3,max=50" example:"ana"`
	Email     string `json:"email" validate:"required,email,max=255" example:"ana@example.com"`
	Password  string `json:"password" validate:"required,min=8" example:"s3cretpass"`
}

// UserUpdateRequestDTO replaces a user's profile. An empty password keeps the
// current one.
type UserUpdateRequestDTO struct {
	FirstName string `json:"first_name" validate:"max=100" example:"Ana"`
	LastName  string `json:"last_name" validate:"max=100" example:"Pérez"`
	Username  string `json:"username" validate:"required,min=3,max=50" example:"ana"`
	Email     string `json:"email" validate:"required,email,max=255" example:"ana@example.com"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=8" example:"n3wsecret"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"ana"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type AuthResponseDTO struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    UserDTO    `json:"user"`
	Points  *PointsDTO `json:"points,omitempty"`
}

// PointsDTO reports an award granted as a side effect of the call.
type PointsDTO struct {
	Awarded int64 `json:"awarded" example:"20"`
	Balance int64 `json:"balance" example:"20"`
}

type UserDTO struct {
	ID        int    `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Ana"`
	LastName  string `json:"last_name" example:"Pérez"`
	Username  string `json:"username" example:"ana"`
	Email     string `json:"email" example:"ana@example.com"`
	Role      string `json:"role" example:"user"`
	CreatedAt string `json:"created_at" example:"2024-11-01T12:00:00Z"`
}
