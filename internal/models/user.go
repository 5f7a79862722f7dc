package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"   // менеджер по учёту активов
	RoleInspector UserRole = "inspector" // проводит инвентаризацию со сканером
	RoleViewer    UserRole = "viewer"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	FullName     string   `gorm:"size:100"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}

// DisplayName — имя для подписи в записях инвентаризации.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
