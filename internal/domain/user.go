package domain

import "messaging-api/internal/wireclock"

type User struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string          `gorm:"size:50;not null;uniqueIndex:ux_users_username" json:"username"`
	Email         string          `gorm:"size:100;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash  string          `gorm:"column:password_hash;size:255;not null" json:"-"`
	FirstName     string          `gorm:"column:first_name;size:50" json:"firstName"`
	LastName      string          `gorm:"column:last_name;size:50" json:"lastName"`
	DeviceAddress string          `gorm:"column:device_address;size:50" json:"deviceAddress"`
	DateCreated   wireclock.Time  `gorm:"column:date_created;not null" json:"dateCreated"`
	LastLogin     *wireclock.Time `gorm:"column:last_login" json:"lastLogin"`
}

func (User) TableName() string { return "users" }

// PublicColumns is the attribute set safe to return to any authenticated
// caller. The password hash is never part of a read query.
var PublicColumns = []string{
	"id", "username", "email", "first_name", "last_name",
	"device_address", "date_created", "last_login",
}
