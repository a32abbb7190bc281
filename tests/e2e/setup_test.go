//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	accountRouter "github.com/aidnetlk/aidnet/internal/account/router"
	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/database/migrate"
	directoryRouter "github.com/aidnetlk/aidnet/internal/directory/router"
	"github.com/aidnetlk/aidnet/internal/events"
	"github.com/aidnetlk/aidnet/internal/health"
	"github.com/aidnetlk/aidnet/internal/localize"
	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	organizationRouter "github.com/aidnetlk/aidnet/internal/organization/router"
	requestRouter "github.com/aidnetlk/aidnet/internal/request/router"
	teamRouter "github.com/aidnetlk/aidnet/internal/team/router"
	"github.com/aidnetlk/aidnet/internal/upload"
	volunteerRouter "github.com/aidnetlk/aidnet/internal/volunteerrequest/router"
	"github.com/aidnetlk/aidnet/pkg/client"

	"go.uber.org/zap"
)

// capturingMailer records the tokens that would have been mailed so
// flows can follow the links.
type capturingMailer struct {
	invitationTokens map[string]string
	resetTokens      map[string]string
}

func newCapturingMailer() *capturingMailer {
	return &capturingMailer{
		invitationTokens: make(map[string]string),
		resetTokens:      make(map[string]string),
	}
}

func (m *capturingMailer) SendInvitation(ctx context.Context, toEmail, firstName, organizationName, token string) error {
	m.invitationTokens[toEmail] = token
	return nil
}

func (m *capturingMailer) SendPasswordReset(ctx context.Context, toEmail, firstName, token string, accountID uint) error {
	m.resetTokens[toEmail] = token
	return nil
}

type fakeSigner struct{}

func (fakeSigner) SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	return "https://uploads.test.invalid/" + key + "?signature=e2e", nil
}

// E2ETestSuite runs the full HTTP API against a real PostgreSQL
// database with migrations applied.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	mailer      *capturingMailer
	bus         *events.Bus
}

func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("aidnet_test"),
		postgres.WithUsername("aidnet"),
		postgres.WithPassword("aidnet"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	s.server = httptest.NewServer(s.buildRouter())
}

func (s *E2ETestSuite) buildRouter() *gin.Engine {
	logger := zap.NewNop().Sugar()
	authCfg := appConfig.AuthConfig{
		JWTSecret:         "e2e-secret",
		TokenTTL:          time.Hour,
		ResetTokenTTL:     time.Hour,
		MinPasswordLength: 6,
	}
	directoryCfg := appConfig.DirectoryConfig{
		MinLat: 5.7, MinLon: 79.4, MaxLat: 10.1, MaxLon: 82.1,
		CacheTTL: time.Minute,
	}
	uploadCfg := appConfig.UploadConfig{
		Bucket:        "aidnet-test",
		Region:        "ap-south-1",
		PublicBaseURL: "https://cdn.test.invalid",
		URLExpiry:     15 * time.Minute,
	}

	tokens := auth.NewTokenManager(authCfg)
	bus := events.NewBus()
	s.bus = bus
	s.mailer = newCapturingMailer()
	uploadService := upload.NewService(fakeSigner{}, uploadCfg, logger)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Locale())

	r.GET("/health", health.New(s.db, logger).Check)
	localize.RegisterRoutes(r)
	accountRouter.RegisterRoutes(r, s.db, tokens, s.mailer, authCfg, logger)
	organizationRouter.RegisterRoutes(r, s.db, tokens, bus, logger)
	requestRouter.RegisterRoutes(r, s.db, tokens, bus, logger)
	volunteerRouter.RegisterRoutes(r, s.db, tokens, bus, logger)
	teamRouter.RegisterRoutes(r, s.db, tokens, s.mailer, authCfg, logger)
	directoryRouter.RegisterRoutes(r, s.db, bus, directoryCfg, logger)
	upload.RegisterRoutes(r, tokens, uploadService, logger)
	return r
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest starts every test from empty tables.
func (s *E2ETestSuite) SetupTest() {
	err := s.db.Exec(`TRUNCATE accounts, organizations, locations, requests, volunteer_requests, team_invitations RESTART IDENTITY CASCADE`).Error
	require.NoError(s.T(), err)
	// Truncation bypasses the services, so the directory cache never
	// hears about it.
	s.bus.Publish(events.TopicOrganizationChanged, events.Event{Entity: "organization"})
}

// anonClient returns an unauthenticated API client.
func (s *E2ETestSuite) anonClient() *client.Client {
	return client.New(s.server.URL)
}

// signUp registers an organization and returns an authenticated client.
func (s *E2ETestSuite) signUp(email, organizationName string) (*client.Client, *client.AuthResponse) {
	resp, err := s.anonClient().SignUp(s.ctx, client.SignUpInput{
		OrganizationName: organizationName,
		FirstName:        "Nimal",
		LastName:         "Perera",
		Email:            email,
		ContactNumber:    "+94770000000",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	})
	require.NoError(s.T(), err)
	return client.New(s.server.URL, client.WithToken(resp.Token)), resp
}

// approve flips an organization to approved directly in the database.
// Approval is an operator action with no public endpoint.
func (s *E2ETestSuite) approve(organizationID uint) {
	err := s.db.Model(&organizationModel.Organization{}).
		Where("id = ?", organizationID).
		Update("approved", true).Error
	require.NoError(s.T(), err)
}

func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}
