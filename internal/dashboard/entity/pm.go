package entity

// PMProfile 项目经理人才档案
type PMProfile struct {
	ID           string      `json:"id" gorm:"primaryKey;size:32"`
	Name         string      `json:"name" gorm:"size:64;not null"`
	Level        string      `json:"level" gorm:"size:64"`
	Tags         StringArray `json:"tags" gorm:"type:jsonb"`
	AvatarURL    string      `json:"avatarUrl,omitempty" gorm:"size:512"`
	CustomFields JSONMap     `json:"customFields,omitempty" gorm:"type:jsonb"`
}

func (PMProfile) TableName() string {
	return "pms"
}
