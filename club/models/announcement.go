package models

import "time"

type Announcement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
	Author  string `json:"author" binding:"required,min=1,max=100"`
}

type UpdateAnnouncementRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
	Author  *string `json:"author" binding:"omitempty,min=1,max=100"`
}
