package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int       `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type AccountBalance struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Balance   int64     `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HistoryEntry is never updated or deleted once written.
type HistoryEntry struct {
	ID        int64     `db:"id"`
	UserID    int       `db:"user_id"`
	Delta     int64     `db:"delta"`
	Reason    string    `db:"reason"`
	Reference *string   `db:"reference"`
	CreatedAt time.Time `db:"created_at"`
}

type Reward struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Cost        int64     `db:"cost"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

// Redemption is the voucher issued when points are exchanged for a reward.
// Balance is the account balance right after the debit and is not stored.
type Redemption struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	RewardID   int        `db:"reward_id"`
	Cost       int64      `db:"cost"`
	Code       string     `db:"code"`
	RedeemedAt time.Time  `db:"redeemed_at"`
	ClaimedAt  *time.Time `db:"claimed_at"`
	Balance    int64      `db:"-"`
}

const ProductAvailable = "disponible"

type Product struct {
	ID          int             `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Status      string          `db:"status"`
	OwnerID     *int            `db:"owner_id"`
	ImageURL    string          `db:"image_url"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Client struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
}

type CollectionPoint struct {
	ID       int      `db:"id"`
	Name     string   `db:"name"`
	Address  string   `db:"address"`
	Phone    string   `db:"phone"`
	Schedule string   `db:"schedule"`
	Lat      *float64 `db:"lat"`
	Lng      *float64 `db:"lng"`
}

type RequestType string

const (
	RequestExchange RequestType = "intercambio"
	RequestDonation RequestType = "donacion"
)

func (t RequestType) Valid() bool {
	return t == RequestExchange || t == RequestDonation
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pendiente"
	RequestApproved RequestStatus = "aprobada"
	RequestRejected RequestStatus = "rechazada"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

type Request struct {
	ID          int           `db:"id"`
	UserID      int           `db:"user_id"`
	Username    string        `db:"username"`
	Type        RequestType   `db:"type"`
	ProductName string        `db:"product_name"`
	Quantity    int           `db:"quantity"`
	Description string        `db:"description"`
	Status      RequestStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
}

// GrantResult is the outcome of one user's share of a bulk grant.
type GrantResult struct {
	UserID  int
	Balance int64
	Err     error
}

// Award describes points credited as a side effect of another operation.
type Award struct {
	Points  int64
	Balance int64
}
