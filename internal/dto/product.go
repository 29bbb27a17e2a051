package dto

type ProductDTO struct {
	ID          int    `json:"id" example:"4"`
	Name        string `json:"name" example:"Lámpara"`
	Description string `json:"description" example:"Lámpara de mesa"`
	Category    string `json:"category" example:"hogar"`
	Price       string `json:"price" example:"12.50"`
	Stock       int    `json:"stock" example:"3"`
	Status      string `json:"status" example:"disponible"`
	OwnerID     *int   `json:"owner_id,omitempty" example:"1"`
	ImageURL    string `json:"image_url,omitempty" example:"https://example.com/lamp.jpg"`
	CreatedAt   string `json:"created_at" example:"2024-11-01T12:00:00Z"`
}

type ProductRequestDTO struct {
	Name        string `json:"name" validate:"required,max=150" example:"Lámpara"`
	Description string `json:"description" validate:"max=2000" example:"Lámpara de mesa"`
	Category    string `json:"category" validate:"max=100" example:"hogar"`
	Price       string `json:"price" validate:"required,numeric" example:"12.50"`
	Stock       int    `json:"stock" validate:"gte=0" example:"3"`
	Status      string `json:"status" validate:"max=30" example:"disponible"`
	OwnerID     *int   `json:"owner_id" validate:"omitempty,gt=0" example:"1"`
	ImageURL    string `json:"image_url" validate:"omitempty,url,max=500" example:"https://example.com/lamp.jpg"`
}

type ClientDTO struct {
	ID        int    `json:"id" example:"2"`
	FirstName string `json:"first_name" example:"Luis"`
	LastName  string `json:"last_name" example:"Gómez"`
	Email     string `json:"email" example:"luis@example.com"`
	Phone     string `json:"phone" example:"+34 600 000 000"`
}

type ClientRequestDTO struct {
	FirstName string `json:"first_name" validate:"required,max=100" example:"Luis"`
	LastName  string `json:"last_name" validate:"max=100" example:"Gómez"`
	Email     string `json:"email" validate:"omitempty,email,max=255" example:"luis@example.com"`
	Phone     string `json:"phone" validate:"max=30" example:"+34 600 000 000"`
}

type CollectionPointDTO struct {
	ID       int      `json:"id" example:"1"`
	Name     string   `json:"name" example:"Punto Centro"`
	Address  string   `json:"address" example:"Calle Mayor 1"`
	Phone    string   `json:"phone" example:"+34 910 000 000"`
	Schedule string   `json:"schedule" example:"L-V 9:00-18:00"`
	Lat      *float64 `json:"lat,omitempty" example:"40.4168"`
	Lng      *float64 `json:"lng,omitempty" example:"-3.7038"`
}

type CollectionPointRequestDTO struct {
	Name     string   `json:"name" validate:"required,max=150" example:"Punto Centro"`
	Address  string   `json:"address" validate:"max=255" example:"Calle Mayor 1"`
	Phone    string   `json:"phone" validate:"max=30" example:"+34 910 000 000"`
	Schedule string   `json:"schedule" validate:"max=150" example:"L-V 9:00-18:00"`
	Lat      *float64 `json:"lat" validate:"omitempty,latitude" example:"40.4168"`
	Lng      *float64 `json:"lng" validate:"omitempty,longitude" example:"-3.7038"`
}
