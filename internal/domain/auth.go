package domain

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      int64  `json:"userId"`
}

type VerifyTokenResponse struct {
	IsValid bool   `json:"isValid"`
	UserID  *int64 `json:"userId,omitempty"`
}
