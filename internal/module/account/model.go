package account

import "time"

// UserModel 市场用户，email 唯一
type UserModel struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:120;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:60;not null" json:"-"`
	Phone     string    `gorm:"column:phone;size:20" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
}

func (UserModel) TableName() string {
	return "users"
}
