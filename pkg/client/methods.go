package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SignUpInput is the sign-up form.
type SignUpInput struct {
	OrganizationName string  `json:"organizationName"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	ContactNumber    string  `json:"contactNumber"`
	Password         string  `json:"password"`
	ConfirmPassword  string  `json:"confirmPassword"`
	UserRoles        []int64 `json:"userRoles"`
}

// SignUp registers a new organization with its owning account.
func (c *Client) SignUp(ctx context.Context, input SignUpInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates by email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts a password reset.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, body, nil); err != nil {
		return err
	}
	return nil
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	AccountID       uint   `json:"accountId"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetPassword completes a password reset with a mailed token.
func (c *Client) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, input, nil); err != nil {
		return err
	}
	return nil
}

// Me returns the signed-in account.
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var out Me
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrganization returns the signed-in account's full organization.
func (c *Client) MyOrganization(ctx context.Context) (*Organization, error) {
	var out Organization
	if err := c.do(ctx, http.MethodGet, "/organizations/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Organization returns an approved organization's public profile.
func (c *Client) Organization(ctx context.Context, id uint) (*PublicOrganization, error) {
	var out PublicOrganization
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/organizations/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrganizationDetails saves the details form.
func (c *Client) UpdateOrganizationDetails(ctx context.Context, body interface{}) (*Organization, error) {
	return c.putOrganization(ctx, "/organizations/me/details", body)
}

// UpdateOrganizationContact saves the contact form.
func (c *Client) UpdateOrganizationContact(ctx context.Context, body interface{}) (*Organization, error) {
	return c.putOrganization(ctx, "/organizations/me/contact", body)
}

// UpdateOrganizationBank saves the bank form.
func (c *Client) UpdateOrganizationBank(ctx context.Context, body interface{}) (*Organization, error) {
	return c.putOrganization(ctx, "/organizations/me/bank", body)
}

// UpdateOrganizationLocations replaces the location list.
func (c *Client) UpdateOrganizationLocations(ctx context.Context, locations []Location) (*Organization, error) {
	return c.putOrganization(ctx, "/organizations/me/locations", map[string]interface{}{"locations": locations})
}

func (c *Client) putOrganization(ctx context.Context, path string, body interface{}) (*Organization, error) {
	var out Organization
	if err := c.do(ctx, http.MethodPut, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestFilter narrows request listings.
type RequestFilter struct {
	Type             string
	IncludeCompleted bool
	PlaceID          string
	Query            string
}

func (f RequestFilter) values() url.Values {
	query := url.Values{}
	if f.Type != "" {
		query.Set("requestType", f.Type)
	}
	if f.IncludeCompleted {
		query.Set("includeCompleted", "true")
	}
	if f.PlaceID != "" {
		query.Set("placeId", f.PlaceID)
	}
	if f.Query != "" {
		query.Set("q", f.Query)
	}
	return query
}

// Requests lists the signed-in organization's requests.
func (c *Client) Requests(ctx context.Context, filter RequestFilter) ([]Request, error) {
	var out struct {
		Requests []Request `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/requests", filter.values(), nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

// OrganizationRequests lists an approved organization's requests.
func (c *Client) OrganizationRequests(ctx context.Context, organizationID uint, filter RequestFilter) ([]Request, error) {
	var out struct {
		Requests []Request `json:"requests"`
	}
	path := fmt.Sprintf("/organizations/%d/requests", organizationID)
	if err := c.do(ctx, http.MethodGet, path, filter.values(), nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

// RequestInput is the request create/update form.
type RequestInput struct {
	RequestType  string  `json:"requestType"`
	ItemName     string  `json:"itemName"`
	Quantity     float64 `json:"quantity"`
	QuantityUnit string  `json:"quantityUnit"`
	Description  string  `json:"description"`
	PlaceID      string  `json:"placeId"`
}

// CreateRequest publishes a new supply request.
func (c *Client) CreateRequest(ctx context.Context, input RequestInput) (*Request, error) {
	var out Request
	if err := c.do(ctx, http.MethodPost, "/requests", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequest edits a supply request.
func (c *Client) UpdateRequest(ctx context.Context, id uint, input RequestInput) (*Request, error) {
	var out Request
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/requests/%d", id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FulfillRequest marks a supply request completed.
func (c *Client) FulfillRequest(ctx context.Context, id uint) (*Request, error) {
	var out Request
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/fulfill", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest removes a supply request.
func (c *Client) DeleteRequest(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil, nil); err != nil {
		return err
	}
	return nil
}

// VolunteerRequestFilter narrows volunteer request listings.
type VolunteerRequestFilter struct {
	IncludeCompleted bool
	PlaceID          string
	Query            string
}

func (f VolunteerRequestFilter) values() url.Values {
	query := url.Values{}
	if f.IncludeCompleted {
		query.Set("includeCompleted", "true")
	}
	if f.PlaceID != "" {
		query.Set("placeId", f.PlaceID)
	}
	if f.Query != "" {
		query.Set("q", f.Query)
	}
	return query
}

// VolunteerRequests lists the signed-in organization's volunteer requests.
func (c *Client) VolunteerRequests(ctx context.Context, filter VolunteerRequestFilter) ([]VolunteerRequest, error) {
	var out struct {
		VolunteerRequests []VolunteerRequest `json:"volunteerRequests"`
	}
	if err := c.do(ctx, http.MethodGet, "/volunteer-requests", filter.values(), nil, &out); err != nil {
		return nil, err
	}
	return out.VolunteerRequests, nil
}

// OrganizationVolunteerRequests lists an approved organization's
// volunteer requests.
func (c *Client) OrganizationVolunteerRequests(ctx context.Context, organizationID uint, filter VolunteerRequestFilter) ([]VolunteerRequest, error) {
	var out struct {
		VolunteerRequests []VolunteerRequest `json:"volunteerRequests"`
	}
	path := fmt.Sprintf("/organizations/%d/volunteer-requests", organizationID)
	if err := c.do(ctx, http.MethodGet, path, filter.values(), nil, &out); err != nil {
		return nil, err
	}
	return out.VolunteerRequests, nil
}

// VolunteerRequestInput is the volunteer request create/update form.
type VolunteerRequestInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	PlaceID     string   `json:"placeId"`
}

// CreateVolunteerRequest publishes a new volunteer request.
func (c *Client) CreateVolunteerRequest(ctx context.Context, input VolunteerRequestInput) (*VolunteerRequest, error) {
	var out VolunteerRequest
	if err := c.do(ctx, http.MethodPost, "/volunteer-requests", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVolunteerRequest edits a volunteer request.
func (c *Client) UpdateVolunteerRequest(ctx context.Context, id uint, input VolunteerRequestInput) (*VolunteerRequest, error) {
	var out VolunteerRequest
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/volunteer-requests/%d", id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FulfillVolunteerRequest marks a volunteer request completed.
func (c *Client) FulfillVolunteerRequest(ctx context.Context, id uint) (*VolunteerRequest, error) {
	var out VolunteerRequest
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/volunteer-requests/%d/fulfill", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVolunteerRequest removes a volunteer request.
func (c *Client) DeleteVolunteerRequest(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/volunteer-requests/%d", id), nil, nil, nil); err != nil {
		return err
	}
	return nil
}

// Team lists the signed-in organization's members and pending invitations.
func (c *Client) Team(ctx context.Context) (*Team, error) {
	var out Team
	if err := c.do(ctx, http.MethodGet, "/team", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteInput is the team invite form.
type InviteInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
}

// Invite creates a pending team invitation.
func (c *Client) Invite(ctx context.Context, input InviteInput) (*Invitation, error) {
	var out Invitation
	if err := c.do(ctx, http.MethodPost, "/team/invitations", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendInvitation refreshes an invitation's link and re-sends its mail.
func (c *Client) ResendInvitation(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/team/invitations/%d/resend", id), nil, nil, nil); err != nil {
		return err
	}
	return nil
}

// DeleteInvitation removes a pending invitation.
func (c *Client) DeleteInvitation(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/team/invitations/%d", id), nil, nil, nil); err != nil {
		return err
	}
	return nil
}

// AcceptInvitation converts an invitation into an account.
func (c *Client) AcceptInvitation(ctx context.Context, token, password, confirmPassword string) (*AuthResponse, error) {
	body := map[string]string{
		"token":           token,
		"password":        password,
		"confirmPassword": confirmPassword,
	}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/team/invitations/accept", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Directory returns the public directory, optionally filtered by query.
func (c *Client) Directory(ctx context.Context, query string) (*Directory, error) {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	var out Directory
	if err := c.do(ctx, http.MethodGet, "/directory", values, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUpload asks for a presigned upload slot.
func (c *Client) SignUpload(ctx context.Context, fileName, folder, contentType string) (*UploadSlot, error) {
	body := map[string]string{
		"fileName":    fileName,
		"folder":      folder,
		"contentType": contentType,
	}
	var out UploadSlot
	if err := c.do(ctx, http.MethodPost, "/uploads", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Localization returns a language's merged string table.
func (c *Client) Localization(ctx context.Context, language string) (*Localization, error) {
	var out Localization
	if err := c.do(ctx, http.MethodGet, "/localization/"+language, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
