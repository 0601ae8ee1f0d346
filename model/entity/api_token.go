package entity

import "time"

// APIToken is a bearer token bound to a role (see core/auth role map).
type APIToken struct {
	TokenID   uint      `gorm:"column:token_id;primaryKey;autoIncrement" json:"token_id"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex" json:"token"`
	Role      string    `gorm:"column:role;type:varchar(32);not null" json:"role"`
	Revoked   uint16    `gorm:"column:revoked;not null;default:0" json:"revoked"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (APIToken) TableName() string {
	return "api_token"
}
