package dto

import (
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FromUser(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// FromAward returns nil when nothing was awarded.
func FromAward(a *domain.Award) *PointsDTO {
	if a == nil {
		return nil
	}
	return &PointsDTO{Awarded: a.Points, Balance: a.Balance}
}

func FromHistory(entries []domain.HistoryEntry) []HistoryEntryDTO {
	res := make([]HistoryEntryDTO, len(entries))
	for i, e := range entries {
		res[i] = HistoryEntryDTO{
			ID:        e.ID,
			Delta:     e.Delta,
			Reason:    e.Reason,
			Reference: e.Reference,
			CreatedAt: formatTime(e.CreatedAt),
		}
	}
	return res
}

func FromReward(r *domain.Reward) RewardDTO {
	return RewardDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Cost:        r.Cost,
		Active:      r.Active,
	}
}

func FromRewards(rewards []domain.Reward) []RewardDTO {
	res := make([]RewardDTO, len(rewards))
	for i := range rewards {
		res[i] = FromReward(&rewards[i])
	}
	return res
}

func FromRedemption(r *domain.Redemption) VoucherDTO {
	v := VoucherDTO{
		Code:       r.Code,
		UserID:     r.UserID,
		RewardID:   r.RewardID,
		Cost:       r.Cost,
		RedeemedAt: formatTime(r.RedeemedAt),
	}
	if r.ClaimedAt != nil {
		claimed := formatTime(*r.ClaimedAt)
		v.ClaimedAt = &claimed
	}
	return v
}

func FromRequest(r *domain.Request) RequestDTO {
	return RequestDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		Username:    r.Username,
		Type:        string(r.Type),
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   formatTime(r.CreatedAt),
	}
}

func FromRequests(requests []domain.Request) []RequestDTO {
	res := make([]RequestDTO, len(requests))
	for i := range requests {
		res[i] = FromRequest(&requests[i])
	}
	return res
}

func FromProduct(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		Status:      p.Status,
		OwnerID:     p.OwnerID,
		ImageURL:    p.ImageURL,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func FromClient(c *domain.Client) ClientDTO {
	return ClientDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func FromCollectionPoint(p *domain.CollectionPoint) CollectionPointDTO {
	return CollectionPointDTO{
		ID:       p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Phone:    p.Phone,
		Schedule: p.Schedule,
		Lat:      p.Lat,
		Lng:      p.Lng,
	}
}
