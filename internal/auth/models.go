package auth

import "time"

type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Username             string    `json:"username"`
	PasswordHash         string    `json:"-"`
	FullName             string    `json:"full_name"`
	Role                 string    `json:"role"`
	AvatarURL            string    `json:"avatar_url"`
	Bio                  string    `json:"bio"`
	FavoriteDestinations []string  `json:"favorite_destinations"`
	TravelStyle          string    `json:"travel_style"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ProfileUpdate carries the editable profile fields. Pointer fields
// distinguish "leave alone" from "clear".
type ProfileUpdate struct {
	FullName             *string  `json:"full_name"`
	AvatarURL            *string  `json:"avatar_url"`
	Bio                  *string  `json:"bio"`
	FavoriteDestinations []string `json:"favorite_destinations"`
	TravelStyle          *string  `json:"travel_style"`
}
