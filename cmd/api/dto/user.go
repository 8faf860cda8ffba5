package dto

import "dream-journal/models"

type RegisterRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AvatarResponseDTO struct {
	Avatar string `json:"avatar"`
}
