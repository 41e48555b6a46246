package dto

import "github.com/hayat/parivartan/internal/app/models"

// UserResponse represents public user information
type UserResponse struct {
	ID        string `json:"id" example:"user-1"`
	Name      string `json:"name" example:"Hayat"`
	Username  string `json:"username" example:"beinghayat"`
	Email     string `json:"email" example:"beinghayat@parivartan-miet.org"`
	Role      string `json:"role" example:"ADMIN" enums:"ADMIN,MEMBER,GUEST"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ToUserResponse maps a user model to its public representation
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		AvatarURL: user.AvatarURL,
	}
}

// ToUserResponses maps a slice of users
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

// CreateMemberRequest represents the data needed to add a member account
type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
