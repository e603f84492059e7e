package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"size:20;default:'member';not null" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}
