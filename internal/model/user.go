package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account that owns vehicles
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50"`
	Password  string         `json:"-" gorm:"size:255"` // hashed password
	Email     string         `json:"email" gorm:"uniqueIndex;size:100"`
	Status    int            `json:"status" gorm:"default:1"` // 0: inactive, 1: active
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginResponse represents login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginLog 登录审计日志
type LoginLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username" gorm:"size:50"`
	Action    string    `json:"action" gorm:"size:20"` // login, register
	IP        string    `json:"ip" gorm:"size:45"`
	UserAgent string    `json:"user_agent" gorm:"type:text"`
	Success   bool      `json:"success"`
	ErrorMsg  string    `json:"error_msg,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}
