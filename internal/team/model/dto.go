// Package model provides domain models and DTOs for the team module.
package model

// Member is one team member row, sourced from the accounts table.
type Member struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
	IsActive  bool    `json:"isActive"`
}

// TeamResponse lists an organization's members and pending invitations.
type TeamResponse struct {
	Members     []Member         `json:"members"`
	Invitations []TeamInvitation `json:"invitations"`
}

// InviteRequest carries the invite form.
type InviteRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
}

// AcceptRequest completes an invitation by choosing a password.
type AcceptRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
