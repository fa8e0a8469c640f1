package users

import "time"

type Role string

const (
	RoleArtist Role = "ARTIST"
	RoleBuyer  Role = "BUYER"
)

func (r Role) Valid() bool { return r == RoleArtist || r == RoleBuyer }

// CurrentUser is the signed-in storefront user; nil while logged out.
type CurrentUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Account is a credential record held by the development auth gateway.
type Account struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex:idx_accounts_email"`
	Password  string `gorm:"not null"`
	Role      Role   `gorm:"type:varchar(10);not null;default:'BUYER'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
