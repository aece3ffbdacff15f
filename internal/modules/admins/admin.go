package admins

import "time"

// Admin is an email allowed to sign in to the admin panel. Sign-in itself is
// handled by the external identity provider; this table is the allow-list.
type Admin struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"_id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_admins_email" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Admin) TableName() string { return "admins" }
