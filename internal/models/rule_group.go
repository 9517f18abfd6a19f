package models

import "time"

type RuleGroup struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

func (g *RuleGroup) ConvertToRuleGroupOut() *RuleGroupOut {
	return &RuleGroupOut{
		Kind:        "ruleGroup",
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Order:       g.Order,
		Active:      g.Active,
	}
}

type RuleGroupOut struct {
	Kind        string    `json:"kind"`
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	Rules       []RuleOut `json:"rules,omitempty"`
}
