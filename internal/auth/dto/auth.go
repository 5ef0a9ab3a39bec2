package dto

import authdomain "handoff-backend/internal/auth/domain"

type RegisterRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name" binding:"required"`
}

type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type TokenResponse struct {
	IDToken      string              `json:"id_token"`
	RefreshToken string              `json:"refresh_token"`
	ExpiresIn    string              `json:"expires_in"`
	Session      *authdomain.Session `json:"session"`
}
