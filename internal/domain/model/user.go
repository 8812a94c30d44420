package model

import (
	"fmt"
	"time"
)

// User describes a registered customer.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// NotificationAddress returns the address status notifications are sent
// to, falling back to the conventional per-customer alias when the user
// record carries no email.
func (u *User) NotificationAddress() string {
	if u.Email != "" {
		return u.Email
	}
	return fmt.Sprintf("customer-%s@example.com", u.ID)
}
