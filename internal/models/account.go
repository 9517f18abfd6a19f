package models

import "time"

const (
	AccountTypeAsset    = "asset"
	AccountTypeExpense  = "expense"
	AccountTypeRevenue  = "revenue"
	AccountTypeCash     = "cash"
	AccountStatusActive = "active"
)

type Account struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

func (a *Account) ConvertToAccountOut() *AccountOut {
	return &AccountOut{
		Kind:     "account",
		ID:       a.ID,
		Name:     a.Name,
		Type:     a.Type,
		Currency: a.Currency,
		Status:   a.Status,
	}
}

type AccountOut struct {
	Kind     string `json:"kind"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}
