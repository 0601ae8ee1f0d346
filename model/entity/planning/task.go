package planning

const (
	TaskOpen      = "Open"
	TaskCompleted = "Completed"
)

// Task is a workflow item; purchases are logged as completed procurement tasks.
type Task struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Task     string `gorm:"column:task;type:varchar(255);not null" json:"task"`
	Assignee string `gorm:"column:assignee;type:varchar(64)" json:"assignee"`
	Status   string `gorm:"column:status;type:varchar(16);not null" json:"status"`
}

func (Task) TableName() string {
	return "tasks"
}
