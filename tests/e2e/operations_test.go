//go:build e2e
// +build e2e

package e2e

import (
	"strings"

	"github.com/aidnetlk/aidnet/pkg/client"
)

func (s *E2ETestSuite) withLocations(c *client.Client) {
	_, err := c.UpdateOrganizationLocations(s.ctx, []client.Location{
		{PlaceID: "colombo", Lat: 6.9, Lon: 79.8},
		{PlaceID: "kandy", Lat: 7.3, Lon: 80.6},
	})
	s.Require().NoError(err)
}

func (s *E2ETestSuite) TestRequestLifecycle() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")
	s.withLocations(c)

	created, err := c.CreateRequest(s.ctx, client.RequestInput{
		RequestType:  "Ration",
		ItemName:     "Rice",
		Quantity:     25,
		QuantityUnit: "Kg",
		PlaceID:      "colombo",
	})
	s.Require().NoError(err)
	s.Equal("Active", created.Status)

	updated, err := c.UpdateRequest(s.ctx, created.ID, client.RequestInput{
		RequestType:  "Ration",
		ItemName:     "Red Rice",
		Quantity:     50,
		QuantityUnit: "Kg",
		PlaceID:      "kandy",
	})
	s.Require().NoError(err)
	s.Equal("Red Rice", updated.ItemName)
	s.Equal("kandy", updated.PlaceID)

	fulfilled, err := c.FulfillRequest(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Completed", fulfilled.Status)

	_, err = c.FulfillRequest(s.ctx, created.ID)
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindConflict, apiErr.Kind)
	s.Equal("ALREADY_COMPLETED", apiErr.Code)

	requests, err := c.Requests(s.ctx, client.RequestFilter{})
	s.Require().NoError(err)
	s.Empty(requests)

	requests, err = c.Requests(s.ctx, client.RequestFilter{IncludeCompleted: true})
	s.Require().NoError(err)
	s.Len(requests, 1)

	s.Require().NoError(c.DeleteRequest(s.ctx, created.ID))
	requests, err = c.Requests(s.ctx, client.RequestFilter{IncludeCompleted: true})
	s.Require().NoError(err)
	s.Empty(requests)
}

func (s *E2ETestSuite) TestRequestValidationAndOwnership() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")
	s.withLocations(c)

	_, err := c.CreateRequest(s.ctx, client.RequestInput{
		RequestType:  "Ration",
		ItemName:     "Rice",
		Quantity:     25,
		QuantityUnit: "Kg",
		PlaceID:      "galle",
	})
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindValidation, apiErr.Kind)
	s.NotEmpty(apiErr.Fields["placeId"])

	created, err := c.CreateRequest(s.ctx, client.RequestInput{
		RequestType:  "Equipment",
		ItemName:     "Gas Cooker",
		Quantity:     2,
		QuantityUnit: "Nos",
		PlaceID:      "colombo",
	})
	s.Require().NoError(err)

	other, _ := s.signUp("kamala@example.org", "Meal Train")
	_, err = other.FulfillRequest(s.ctx, created.ID)
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindNotFound, apiErr.Kind)
}

func (s *E2ETestSuite) TestPublicRequestListing() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")
	s.withLocations(c)
	_, err := c.CreateRequest(s.ctx, client.RequestInput{
		RequestType:  "Ration",
		ItemName:     "Rice",
		Quantity:     25,
		QuantityUnit: "Kg",
		PlaceID:      "colombo",
	})
	s.Require().NoError(err)

	me, err := c.Me(s.ctx)
	s.Require().NoError(err)

	_, err = s.anonClient().OrganizationRequests(s.ctx, me.Organization.ID, client.RequestFilter{})
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindNotFound, apiErr.Kind)

	s.approve(me.Organization.ID)
	requests, err := s.anonClient().OrganizationRequests(s.ctx, me.Organization.ID, client.RequestFilter{})
	s.Require().NoError(err)
	s.Len(requests, 1)
}

func (s *E2ETestSuite) TestVolunteerRequestLifecycle() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")
	s.withLocations(c)

	created, err := c.CreateVolunteerRequest(s.ctx, client.VolunteerRequestInput{
		Title:       "Delivery Drivers",
		Description: "Deliver cooked meals around Colombo",
		Skills:      []string{"driving"},
		PlaceID:     "colombo",
	})
	s.Require().NoError(err)
	s.Equal("Active", created.Status)

	listed, err := c.VolunteerRequests(s.ctx, client.VolunteerRequestFilter{Query: "meals"})
	s.Require().NoError(err)
	s.Len(listed, 1)

	fulfilled, err := c.FulfillVolunteerRequest(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Completed", fulfilled.Status)

	s.Require().NoError(c.DeleteVolunteerRequest(s.ctx, created.ID))
}

func (s *E2ETestSuite) TestTeamInvitationFlow() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")

	invitation, err := c.Invite(s.ctx, client.InviteInput{
		FirstName: "Kamala",
		LastName:  "Silva",
		Email:     "kamala@example.org",
		UserRoles: []int64{2},
	})
	s.Require().NoError(err)

	firstToken := s.mailer.invitationTokens["kamala@example.org"]
	s.Require().NotEmpty(firstToken)

	_, err = c.Invite(s.ctx, client.InviteInput{
		FirstName: "Kamala",
		LastName:  "Silva",
		Email:     "kamala@example.org",
	})
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindConflict, apiErr.Kind)
	s.Equal("INVITE_EXISTS", apiErr.Code)

	s.Require().NoError(c.ResendInvitation(s.ctx, invitation.ID))
	secondToken := s.mailer.invitationTokens["kamala@example.org"]
	s.NotEqual(firstToken, secondToken)

	_, err = s.anonClient().AcceptInvitation(s.ctx, firstToken, "secret1", "secret1")
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindNotFound, apiErr.Kind)

	accepted, err := s.anonClient().AcceptInvitation(s.ctx, secondToken, "secret1", "secret1")
	s.Require().NoError(err)
	s.Equal("kamala@example.org", accepted.Account.Email)

	team, err := c.Team(s.ctx)
	s.Require().NoError(err)
	s.Len(team.Members, 2)
	s.Empty(team.Invitations)

	memberClient := client.New(s.server.URL, client.WithToken(accepted.Token))
	org, err := memberClient.MyOrganization(s.ctx)
	s.Require().NoError(err)
	s.Equal("Helping Hands", org.Name)
}

func (s *E2ETestSuite) TestUploadSigning() {
	c, _ := s.signUp("nimal@example.org", "Helping Hands")

	slot, err := c.SignUpload(s.ctx, "logo.png", "profile-images", "image/png")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(slot.Key, "profile-images/"))
	s.Contains(slot.UploadURL, slot.Key)
	s.Contains(slot.PublicURL, slot.Key)

	_, err = c.SignUpload(s.ctx, "logo.png", "secrets", "image/png")
	var apiErr *client.Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindValidation, apiErr.Kind)

	_, err = s.anonClient().SignUpload(s.ctx, "logo.png", "profile-images", "image/png")
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(client.KindUnauthorized, apiErr.Kind)
}
