package dto

type CreateRequestDTO struct {
	Type        string `json:"type" validate:"required,oneof=intercambio donacion" example:"donacion"`
	ProductName string `json:"product_name" validate:"required,max=150" example:"Chaqueta"`
	Quantity    int    `json:"quantity" validate:"omitempty,gte=1" example:"1"`
	Description string `json:"description" validate:"max=2000" example:"Talla M"`
}

type RequestDTO struct {
	ID          int    `json:"id" example:"7"`
	UserID      int    `json:"user_id" example:"1"`
	Username    string `json:"username,omitempty" example:"ana"`
	Type        string `json:"type" example:"donacion"`
	ProductName string `json:"product_name" example:"Chaqueta"`
	Quantity    int    `json:"quantity" example:"1"`
	Description string `json:"description" example:"Talla M"`
	Status      string `json:"status" example:"pendiente"`
	CreatedAt   string `json:"created_at" example:"2024-11-01T12:00:00Z"`
}

type CreateRequestResponseDTO struct {
	Request RequestDTO `json:"request"`
	Points  *PointsDTO `json:"points,omitempty"`
}

type UpdateRequestStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=pendiente aprobada rechazada" example:"aprobada"`
}

type UpdateRequestStatusResponseDTO struct {
	Request RequestDTO `json:"request"`
	Points  *PointsDTO `json:"points,omitempty"`
}
