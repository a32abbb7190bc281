//go:build e2e
// +build e2e

package e2e

import (
	"github.com/aidnetlk/aidnet/pkg/client"
)

func (s *E2ETestSuite) TestSignUpAndProfile() {
	c, resp := s.signUp("nimal@example.org", "Helping Hands")
	s.Require().NotEmpty(resp.Token)
	s.Equal("nimal@example.org", resp.Account.Email)

	me, err := c.Me(s.ctx)
	s.Require().NoError(err)
	s.Equal("Nimal", me.FirstName)
	s.Require().NotNil(me.Organization)
	s.False(me.Organization.Approved)

	org, err := c.MyOrganization(s.ctx)
	s.Require().NoError(err)
	s.Equal("Helping Hands", org.Name)
}

func (s *E2ETestSuite) TestDuplicateEmailRejected() {
	s.signUp("nimal@example.org", "Helping Hands")

	_, err := s.anonClient().SignUp(s.ctx, client.SignUpInput{
		OrganizationName: "Other Org",
		FirstName:        "Kamala",
		LastName:         "Silva",
		Email:            "nimal@example.org",
		ContactNumber:    "+94770000001",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	})

	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindConflict, apiErr.Kind)
	s.Equal("EMAIL_TAKEN", apiErr.Code)
}

func (s *E2ETestSuite) TestSignInFlow() {
	s.signUp("nimal@example.org", "Helping Hands")

	resp, err := s.anonClient().SignIn(s.ctx, "nimal@example.org", "secret1")
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)

	_, err = s.anonClient().SignIn(s.ctx, "nimal@example.org", "wrong")
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindUnauthorized, apiErr.Kind)
}

func (s *E2ETestSuite) TestPasswordResetFlow() {
	_, resp := s.signUp("nimal@example.org", "Helping Hands")

	s.Require().NoError(s.anonClient().ForgotPassword(s.ctx, "nimal@example.org"))
	token := s.mailer.resetTokens["nimal@example.org"]
	s.Require().NotEmpty(token)

	err := s.anonClient().ResetPassword(s.ctx, client.ResetPasswordInput{
		AccountID:       resp.Account.ID,
		Token:           token,
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	s.Require().NoError(err)

	_, err = s.anonClient().SignIn(s.ctx, "nimal@example.org", "secret1")
	s.Error(err)

	signed, err := s.anonClient().SignIn(s.ctx, "nimal@example.org", "newsecret")
	s.Require().NoError(err)
	s.NotEmpty(signed.Token)
}

func (s *E2ETestSuite) TestOrganizationProfileEditing() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")

	org, err := c.UpdateOrganizationDetails(s.ctx, map[string]interface{}{
		"name":            "Helping Hands Colombo",
		"summary":         "Cooked meals for families",
		"assistanceTypes": []string{"Cooked Meals"},
	})
	s.Require().NoError(err)
	s.Equal("Helping Hands Colombo", org.Name)

	org, err = c.UpdateOrganizationContact(s.ctx, map[string]interface{}{
		"email":   "hello@helpinghands.lk",
		"website": "https://helpinghands.lk",
	})
	s.Require().NoError(err)
	s.Equal("hello@helpinghands.lk", org.Email)
	// Detail edits survive later contact edits.
	s.Equal("Helping Hands Colombo", org.Name)

	org, err = c.UpdateOrganizationLocations(s.ctx, []client.Location{
		{PlaceID: "colombo", FormattedAddress: "Colombo 07", Lat: 6.9, Lon: 79.8},
	})
	s.Require().NoError(err)
	s.Require().Len(org.Locations, 1)
	s.Equal("colombo", org.Locations[0].PlaceID)

	_, err = c.UpdateOrganizationDetails(s.ctx, map[string]interface{}{"name": ""})
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindValidation, apiErr.Kind)
	s.NotEmpty(apiErr.Fields["name"])
}

func (s *E2ETestSuite) TestDirectoryListsOnlyApproved() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")
	_, err := c.UpdateOrganizationLocations(s.ctx, []client.Location{
		{PlaceID: "colombo", Lat: 6.9, Lon: 79.8},
	})
	s.Require().NoError(err)

	directory, err := s.anonClient().Directory(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(directory.Organizations)

	me, err := c.Me(s.ctx)
	s.Require().NoError(err)
	s.approve(me.Organization.ID)
	// Approval happens outside the API; the cache learns via TTL or
	// the next profile edit.
	_, err = c.UpdateOrganizationDetails(s.ctx, map[string]interface{}{"name": "Helping Hands"})
	s.Require().NoError(err)

	directory, err = s.anonClient().Directory(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(directory.Organizations, 1)
	s.Require().Len(directory.Markers, 1)
	s.Equal("colombo", directory.Markers[0].PlaceID)

	directory, err = s.anonClient().Directory(s.ctx, "nomatch")
	s.Require().NoError(err)
	s.Empty(directory.Organizations)
}
