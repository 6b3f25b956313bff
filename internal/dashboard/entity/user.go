package entity

// User 系统用户
// PM 角色通过 AssignedProjectCodes 限制可见项目范围
type User struct {
	ID                   string      `json:"id" gorm:"primaryKey;size:32"`
	Username             string      `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Name                 string      `json:"name" gorm:"size:64;not null"`
	Role                 string      `json:"role" gorm:"size:16;not null;default:PM"`
	AvatarURL            string      `json:"avatarUrl,omitempty" gorm:"size:512"`
	AssignedProjectCodes StringArray `json:"assignedProjectCodes,omitempty" gorm:"type:jsonb"`
}

func (User) TableName() string {
	return "users"
}

// UserRole 用户角色
const (
	RoleDirector = "DIRECTOR"
	RolePM       = "PM"
)
