package billing

import "time"

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// CheckoutForm mirrors the checkout page; every field is required.
// Card fields are only handed to the payer and never stored.
type CheckoutForm struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Card     string `json:"card" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Expiry   string `json:"expiry" binding:"required"`
	CVC      string `json:"cvc" binding:"required"`
}

type OrderLine struct {
	ArtworkID int64  `json:"artworkId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	SessionID   string      `gorm:"type:varchar(64);index" json:"-"`
	Customer    string      `json:"customer"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Lines       []OrderLine `gorm:"serializer:json" json:"lines"`
	TotalUSD    int64       `gorm:"column:total_usd" json:"total_usd"`
	Provider    string      `json:"provider"`
	ProviderRef *string     `json:"provider_ref,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Receipt is what a payer hands back for a submitted order.
type Receipt struct {
	Provider    string `json:"provider"`
	Reference   string `json:"reference,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Status      string `json:"status"`
}
