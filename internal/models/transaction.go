package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDeposit    = "deposit"
	TransactionTypeTransfer   = "transfer"
)

// Transaction is one journal: a dated movement of a single amount between a
// source and a destination account, decorated with the metadata rules act on.
type Transaction struct {
	ID                     int64           `json:"id"`
	UserID                 int64           `json:"userId"`
	TransactionDate        time.Time       `json:"transactionDate"`
	TransactionType        string          `json:"transactionType"`
	Description            string          `json:"description"`
	Notes                  string          `json:"notes,omitempty"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               string          `json:"currency"`
	SourceAccountID        int64           `json:"sourceAccountId"`
	SourceAccountName      string          `json:"sourceAccountName"`
	DestinationAccountID   int64           `json:"destinationAccountId"`
	DestinationAccountName string          `json:"destinationAccountName"`
	CategoryID             *int64          `json:"categoryId,omitempty"`
	CategoryName           string          `json:"categoryName,omitempty"`
	Tags                   pq.StringArray  `json:"tags"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

type PostingDirection string

const (
	PostingDebit  PostingDirection = "debit"
	PostingCredit PostingDirection = "credit"
)

type Posting struct {
	AccountID   int64
	AccountName string
	Direction   PostingDirection
	Amount      decimal.Decimal
	Currency    string
}

// Postings derives the two legs of the journal from the flattened columns.
func (t *Transaction) Postings() []Posting {
	return []Posting{
		{
			AccountID:   t.SourceAccountID,
			AccountName: t.SourceAccountName,
			Direction:   PostingCredit,
			Amount:      t.Amount.Neg(),
			Currency:    t.Currency,
		},
		{
			AccountID:   t.DestinationAccountID,
			AccountName: t.DestinationAccountName,
			Direction:   PostingDebit,
			Amount:      t.Amount,
			Currency:    t.Currency,
		},
	}
}

func (t *Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// AddTag appends the tag unless an equal tag (case-insensitive) exists.
func (t *Transaction) AddTag(tag string) {
	if t.HasTag(tag) {
		return
	}
	t.Tags = append(t.Tags, tag)
}

func (t *Transaction) RemoveAllTags() {
	t.Tags = nil
}

func (t *Transaction) SetCategory(id int64, name string) {
	t.CategoryID = &id
	t.CategoryName = name
}

func (t *Transaction) ClearCategory() {
	t.CategoryID = nil
	t.CategoryName = ""
}

func (t *Transaction) HasCategory() bool {
	return t.CategoryID != nil
}

func (t *Transaction) ConvertToTransactionOut() *TransactionOut {
	return &TransactionOut{
		Kind:                   "transaction",
		ID:                     t.ID,
		TransactionDate:        t.TransactionDate,
		TransactionType:        t.TransactionType,
		Description:            t.Description,
		Notes:                  t.Notes,
		Amount:                 t.Amount.String(),
		Currency:               t.Currency,
		SourceAccountID:        t.SourceAccountID,
		SourceAccountName:      t.SourceAccountName,
		DestinationAccountID:   t.DestinationAccountID,
		DestinationAccountName: t.DestinationAccountName,
		CategoryName:           t.CategoryName,
		Tags:                   t.Tags,
	}
}

type TransactionOut struct {
	Kind                   string    `json:"kind"`
	ID                     int64     `json:"id"`
	TransactionDate        time.Time `json:"transactionDate"`
	TransactionType        string    `json:"transactionType"`
	Description            string    `json:"description"`
	Notes                  string    `json:"notes,omitempty"`
	Amount                 string    `json:"amount"`
	Currency               string    `json:"currency"`
	SourceAccountID        int64     `json:"sourceAccountId"`
	SourceAccountName      string    `json:"sourceAccountName"`
	DestinationAccountID   int64     `json:"destinationAccountId"`
	DestinationAccountName string    `json:"destinationAccountName"`
	CategoryName           string    `json:"categoryName,omitempty"`
	Tags                   []string  `json:"tags"`
}

type StoreTransactionRequest struct {
	UserID               int64    `json:"user_id" validate:"required"`
	TransactionDate      string   `json:"transaction_date" validate:"required,date"`
	TransactionType      string   `json:"transaction_type" validate:"required,oneof=withdrawal deposit transfer"`
	Description          string   `json:"description" validate:"required,noStartEndSpaces"`
	Notes                string   `json:"notes"`
	Amount               string   `json:"amount" validate:"required"`
	Currency             string   `json:"currency" validate:"required,len=3"`
	SourceAccountID      int64    `json:"source_account_id" validate:"required"`
	DestinationAccountID int64    `json:"destination_account_id" validate:"required"`
	CategoryID           *int64   `json:"category_id"`
	Tags                 []string `json:"tags"`
}

func (r StoreTransactionRequest) ToTransaction() (Transaction, error) {
	date, err := time.Parse("2006-01-02", r.TransactionDate)
	if err != nil {
		return Transaction{}, err
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		UserID:               r.UserID,
		TransactionDate:      date.UTC(),
		TransactionType:      r.TransactionType,
		Description:          r.Description,
		Notes:                r.Notes,
		Amount:               amount,
		Currency:             strings.ToUpper(r.Currency),
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
		CategoryID:           r.CategoryID,
		Tags:                 r.Tags,
	}, nil
}

// TransactionCollectOptions narrows the transaction set a batch run walks.
type TransactionCollectOptions struct {
	UserID     int64
	AccountIDs []int64
	StartDate  *time.Time
	EndDate    *time.Time
}
