package project

import "time"

type Project struct {
	PID         uint      `gorm:"primaryKey;column:p_id;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint      `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the database table name
func (Project) TableName() string {
	return "project_list"
}
