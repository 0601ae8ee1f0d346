package planning

import (
	"context"

	"gorm.io/gorm"

	planningEntity "supplysense/model/entity/planning"
)

// AuditRepository appends to the action log and task list.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

func (r *AuditRepository) AppendAction(ctx context.Context, e *planningEntity.ActionLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Actions returns the action log, newest first; limit <= 0 means all.
func (r *AuditRepository) Actions(ctx context.Context, limit int) ([]planningEntity.ActionLogEntry, error) {
	var rows []planningEntity.ActionLogEntry
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *AuditRepository) CreateTask(ctx context.Context, t *planningEntity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *AuditRepository) Tasks(ctx context.Context) ([]planningEntity.Task, error) {
	var rows []planningEntity.Task
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}
