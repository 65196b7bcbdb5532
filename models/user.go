package models

import "time"

const DefaultProfilePic = "default_profile.jpg"

// Users 用户
// 对应表 users，username / email 唯一
type Users struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"column:username;size:20;not null;uniqueIndex" json:"username"`
	Email      string    `gorm:"column:email;size:120;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"column:password;size:60;not null" json:"-"`
	Phone      string    `gorm:"column:phone;size:20" json:"phone"`
	ProfilePic string    `gorm:"column:profile_pic;size:100;default:default_profile.jpg" json:"profile_pic"`
	Bio        string    `gorm:"column:bio;size:150" json:"bio"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Users) TableName() string { return "users" }
