package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:    userID,
		Name:  authResp.User.Name,
		Email: authResp.User.Email,
	}

	return user, authResp.AccessToken
}

// LeagueBuilder creates test leagues with a builder pattern
type LeagueBuilder struct {
	name       string
	joinCode   string
	password   string
	maxPlayers int
	creator    *domain.User
}

// NewLeagueBuilder creates a new LeagueBuilder with default values
func NewLeagueBuilder() *LeagueBuilder {
	return &LeagueBuilder{
		name:       fmt.Sprintf("Test League %s", uuid.New().String()[:8]),
		joinCode:   generateJoinCode(),
		password:   "leaguepass",
		maxPlayers: 6,
	}
}

// WithName sets the league name
func (b *LeagueBuilder) WithName(name string) *LeagueBuilder {
	b.name = name
	return b
}

// WithJoinCode sets the join code
func (b *LeagueBuilder) WithJoinCode(code string) *LeagueBuilder {
	b.joinCode = code
	return b
}

// WithPassword sets the league password
func (b *LeagueBuilder) WithPassword(password string) *LeagueBuilder {
	b.password = password
	return b
}

// WithMaxPlayers sets the roster cap
func (b *LeagueBuilder) WithMaxPlayers(max int) *LeagueBuilder {
	b.maxPlayers = max
	return b
}

// WithCreator sets the founding member
func (b *LeagueBuilder) WithCreator(user *domain.User) *LeagueBuilder {
	b.creator = user
	return b
}

// Build creates the league in the database along with its founding membership.
// Returns the league and the raw password.
func (b *LeagueBuilder) Build(t *testing.T, db *gorm.DB) (*domain.League, string) {
	t.Helper()

	if b.creator == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.creator = user
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash league password: %v", err)
	}

	league := &domain.League{
		ID:           uuid.New(),
		Name:         b.name,
		JoinCode:     b.joinCode,
		MaxPlayers:   b.maxPlayers,
		PasswordHash: string(hashedPassword),
		CreatedBy:    b.creator.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(league).Error; err != nil {
		t.Fatalf("failed to create league: %v", err)
	}

	member := &domain.LeagueMember{
		ID:       uuid.New(),
		LeagueID: league.ID,
		UserID:   b.creator.ID,
		JoinedAt: time.Now(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create founding membership: %v", err)
	}

	return league, b.password
}

// generateJoinCode returns an uppercase 6-character code so fixtures
// match the case-insensitive lookup the join flow performs.
func generateJoinCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
}

// AddMember joins an existing user to a league directly in the database
func AddMember(t *testing.T, db *gorm.DB, league *domain.League, user *domain.User) *domain.LeagueMember {
	t.Helper()

	member := &domain.LeagueMember{
		ID:       uuid.New(),
		LeagueID: league.ID,
		UserID:   user.ID,
		JoinedAt: time.Now(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	return member
}

// TeamBuilder creates test teams
type TeamBuilder struct {
	name       string
	conference string
}

// NewTeamBuilder creates a new TeamBuilder with default values
func NewTeamBuilder() *TeamBuilder {
	return &TeamBuilder{
		name:       fmt.Sprintf("Test Team %s", uuid.New().String()[:8]),
		conference: "SEC",
	}
}

// WithName sets the team name
func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.name = name
	return b
}

// WithConference sets the conference
func (b *TeamBuilder) WithConference(conference string) *TeamBuilder {
	b.conference = conference
	return b
}

// Build creates the team in the database
func (b *TeamBuilder) Build(t *testing.T, db *gorm.DB) *domain.Team {
	t.Helper()

	team := &domain.Team{
		ID:         uuid.New(),
		Name:       b.name,
		Conference: b.conference,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}

// SeedTeams creates N test teams in the database
func SeedTeams(t *testing.T, db *gorm.DB, count int) []*domain.Team {
	t.Helper()

	teams := make([]*domain.Team, count)
	for i := 0; i < count; i++ {
		teams[i] = NewTeamBuilder().
			WithName(fmt.Sprintf("Test Team %d %s", i, uuid.New().String()[:6])).
			Build(t, db)
	}
	return teams
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoAuthenticatedRequest builds and executes an authenticated request
func DoAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
