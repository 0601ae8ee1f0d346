package planning

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DecisionApproved = "Approved"
	DecisionRejected = "Rejected"
)

// ActionLogEntry records a human decision on a recommended action.
type ActionLogEntry struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Action    string         `gorm:"column:action;type:varchar(128);not null" json:"action"`
	Item      string         `gorm:"column:item;type:varchar(128);not null" json:"item"`
	Decision  string         `gorm:"column:decision;type:varchar(16);not null" json:"decision"`
	Timestamp time.Time      `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
	Details   datatypes.JSON `gorm:"column:details" json:"details,omitempty"`
}

func (ActionLogEntry) TableName() string {
	return "action_log"
}
