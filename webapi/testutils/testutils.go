// Package testutils runs the full HTTP app against a seeded database.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// E2ETestSuite builds a fresh app for every test. OpenDB defaults to an
// in-memory SQLite database.
type E2ETestSuite struct {
	suite.Suite
	OpenDB  func(testing.TB) *gorm.DB
	DB      *gorm.DB
	App     *fiber.App
	Cfg     *config.App
	Bus     *eventbus.MemoryEventBus
	Fixture testutils.Fixture
}

// NewConfig returns the configuration used by the suite.
func NewConfig() *config.App {
	return &config.App{
		Env:      "test",
		Server:   &config.Server{Scheme: "http", Host: "localhost", Port: 3001},
		Log:      &config.Log{},
		DB:       &config.DB{},
		Auth:     &config.Auth{Strategy: "jwt", Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		EventBus: &config.EventBus{Driver: "memory"},
	}
}

// NewApp wires the HTTP app over db.
func NewApp(db *gorm.DB, cfg *config.App) (*fiber.App, *eventbus.MemoryEventBus) {
	bus := eventbus.NewWithMemory(testutils.Logger())
	a := app.New(&app.Deps{
		Uow:      infra.NewUoW(db),
		EventBus: bus,
		Logger:   testutils.Logger(),
	}, cfg)
	return webapi.SetupApp(a), bus
}

func (s *E2ETestSuite) SetupTest() {
	open := s.OpenDB
	if open == nil {
		open = testutils.NewTestDB
	}
	s.DB = open(s.T())
	s.Fixture = testutils.Seed(s.T(), s.DB)
	s.Cfg = NewConfig()
	s.App, s.Bus = NewApp(s.DB, s.Cfg)
}

// MakeRequest sends a request with an optional JSON body and bearer token.
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequestWithApp(s.T(), s.App, method, path, body, token)
}

// MakeRequestWithApp is MakeRequest for an app built outside the suite.
func MakeRequestWithApp(t testing.TB, fiberApp *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := fiberApp.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// Decode reads the JSON body of resp into T.
func Decode[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

// Login signs mail in over HTTP and returns the token.
func (s *E2ETestSuite) Login(mail string) string {
	body := fmt.Sprintf(`{"mail":%q,"passwd":%q}`, mail, testutils.Password)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signin", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	token := Decode[map[string]string](s.T(), resp)["token"]
	s.Require().NotEmpty(token)
	return token
}

// OwnerToken is a token for the user holding the origin and destination accounts.
func (s *E2ETestSuite) OwnerToken() string { return s.Login(s.Fixture.Owner.Mail) }

// StrangerToken is a token for the user holding the foreign account.
func (s *E2ETestSuite) StrangerToken() string { return s.Login(s.Fixture.Stranger.Mail) }
