package dto

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"35"`
}

type HistoryEntryDTO struct {
	ID        int64   `json:"id" example:"12"`
	Delta     int64   `json:"delta" example:"-20"`
	Reason    string  `json:"reason" example:"redeem:3"`
	Reference *string `json:"reference,omitempty" example:"3"`
	CreatedAt string  `json:"created_at" example:"2024-11-01T12:00:00Z"`
}

// AdjustRequestDTO leaves zero deltas and blank reasons to the ledger, which
// answers them with InvalidDelta and InvalidReason.
type AdjustRequestDTO struct {
	Delta  int64  `json:"delta" example:"50"`
	Reason string `json:"reason" validate:"max=100" example:"bonus"`
}

type GrantRequestDTO struct {
	UserIDs []int  `json:"user_ids" validate:"required,min=1,max=1000,dive,gt=0" example:"1,2,3"`
	Delta   int64  `json:"delta" example:"10"`
	Reason  string `json:"reason" validate:"max=100" example:"campaign"`
}

type GrantResultDTO struct {
	UserID  int    `json:"user_id" example:"1"`
	Balance *int64 `json:"balance,omitempty" example:"60"`
	Error   string `json:"error,omitempty"`
}

type SummaryResponseDTO struct {
	Balance int64             `json:"balance" example:"35"`
	History []HistoryEntryDTO `json:"history"`
	Rewards []RewardDTO       `json:"rewards"`
}
