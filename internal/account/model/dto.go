// Package model provides domain models and DTOs for the account module.
package model

// SignUpRequest represents the request to register an organization and
// its owning account.
type SignUpRequest struct {
	OrganizationName string  `json:"organizationName"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	ContactNumber    string  `json:"contactNumber"`
	Password         string  `json:"password"`
	ConfirmPassword  string  `json:"confirmPassword"`
	UserRoles        []int64 `json:"userRoles"`
}

// SignInRequest represents the request to authenticate.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the request to start a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the request to complete a password reset.
type ResetPasswordRequest struct {
	AccountID       uint   `json:"accountId"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AccountSummary is the account shape embedded in auth responses.
type AccountSummary struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
}

// AuthResponse is returned by sign-up, sign-in and invitation acceptance.
type AuthResponse struct {
	Token   string         `json:"token"`
	Account AccountSummary `json:"account"`
}

// OrganizationRef is the organization slice exposed on /me.
type OrganizationRef struct {
	ID       uint `json:"id"`
	Approved bool `json:"approved"`
}

// MeResponse is the current account with its organization reference.
type MeResponse struct {
	ID           uint             `json:"id"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Email        string           `json:"email"`
	UserRoles    []int64          `json:"userRoles"`
	Organization *OrganizationRef `json:"organization"`
}

// SuccessResponse acknowledges operations with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
