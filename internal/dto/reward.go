package dto

type RewardDTO struct {
	ID          int    `json:"id" example:"3"`
	Name        string `json:"name" example:"Bolsa reutilizable"`
	Description string `json:"description" example:"Bolsa de tela"`
	Cost        int64  `json:"cost" example:"20"`
	Active      bool   `json:"active" example:"true"`
}

type RewardRequestDTO struct {
	Name        string `json:"name" validate:"required,max=150" example:"Bolsa reutilizable"`
	Description string `json:"description" validate:"max=2000" example:"Bolsa de tela"`
	Cost        int64  `json:"cost" validate:"required,gt=0" example:"20"`
	Active      *bool  `json:"active" example:"true"`
}

type RedeemResponseDTO struct {
	Balance int64      `json:"balance" example:"15"`
	Voucher VoucherDTO `json:"voucher"`
}

type VoucherDTO struct {
	Code       string  `json:"code" example:"123456789015"`
	UserID     int     `json:"user_id" example:"1"`
	RewardID   int     `json:"reward_id" example:"3"`
	Cost       int64   `json:"cost" example:"20"`
	RedeemedAt string  `json:"redeemed_at" example:"2024-11-01T12:00:00Z"`
	ClaimedAt  *string `json:"claimed_at,omitempty" example:"2024-11-02T09:30:00Z"`
}
