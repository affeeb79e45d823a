package backend

// Package backend contains simple hand-written test doubles for the
// managed-backend ports. These are lightweight and suitable for unit tests
// without codegen or live infrastructure.

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthBackend  = (*MemoryAuthBackend)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
	_ ports.UserStore    = (*MemoryUserStore)(nil)
	_ ports.ProfileStore = (*MemoryProfileStore)(nil)
	_ ports.AuthEventBus = (*MemoryEventBus)(nil)
)

type account struct {
	id       string
	email    string
	password string
}

// MemoryAuthBackend simulates the credential/session authority for tests.
// Error fields, when set, are returned by the corresponding operation.
type MemoryAuthBackend struct {
	// Bus receives signed-in/signed-out events when non-nil, mirroring how the
	// real backend notifies subscribers.
	Bus ports.AuthEventBus
	// SessionTTL defaults to one hour.
	SessionTTL time.Duration

	SignUpErr     error
	SignInErr     error
	SignOutErr    error
	GetSessionErr error
	// RateLimited makes SignUp return a RateLimited error.
	RateLimited bool

	mu       sync.Mutex
	accounts map[string]account // by email
	sessions map[string]domainauth.ClientSession
}

// NewMemoryAuthBackend creates an empty backend.
func NewMemoryAuthBackend() *MemoryAuthBackend {
	return &MemoryAuthBackend{
		SessionTTL: time.Hour,
		accounts:   make(map[string]account),
		sessions:   make(map[string]domainauth.ClientSession),
	}
}

// Register seeds an account without going through SignUp and returns its id.
func (b *MemoryAuthBackend) Register(email, password string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	acct := account{id: uuid.NewString(), email: email, password: password}
	b.accounts[email] = acct
	return acct.id
}

func (b *MemoryAuthBackend) SignUp(_ context.Context, in ports.SignUpInput) (domainauth.Principal, error) {
	if b.SignUpErr != nil {
		return domainauth.Principal{}, b.SignUpErr
	}
	if b.RateLimited {
		return domainauth.Principal{}, apperrors.RateLimited("too many signup attempts")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[in.Email]; exists {
		return domainauth.Principal{}, apperrors.DuplicateAccount("email is already registered")
	}
	acct := account{id: uuid.NewString(), email: in.Email, password: in.Password}
	b.accounts[in.Email] = acct
	return domainauth.Principal{ID: acct.id, Email: acct.email}, nil
}

func (b *MemoryAuthBackend) SignInWithPassword(ctx context.Context, email, password string) (domainauth.ClientSession, error) {
	if b.SignInErr != nil {
		return domainauth.ClientSession{}, b.SignInErr
	}

	b.mu.Lock()
	acct, ok := b.accounts[email]
	if !ok || acct.password != password {
		b.mu.Unlock()
		return domainauth.ClientSession{}, apperrors.Authentication("invalid email or password")
	}
	sess := domainauth.ClientSession{
		ID:          uuid.NewString(),
		PrincipalID: acct.id,
		Email:       acct.email,
		ExpiresAt:   time.Now().Add(b.SessionTTL),
	}
	b.sessions[sess.ID] = sess
	b.mu.Unlock()

	if b.Bus != nil {
		principal := sess.AsPrincipal()
		_ = b.Bus.Publish(ctx, acct.id, domainauth.Event{Type: domainauth.EventSignedIn, Principal: &principal})
	}
	return sess, nil
}

func (b *MemoryAuthBackend) GetSession(_ context.Context, sessionID string) (domainauth.ClientSession, error) {
	if b.GetSessionErr != nil {
		return domainauth.ClientSession{}, b.GetSessionErr
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	sess, ok := b.sessions[sessionID]
	if !ok || sess.Expired() {
		return domainauth.ClientSession{}, apperrors.NotFound("session not found")
	}
	return sess, nil
}

func (b *MemoryAuthBackend) SignOut(ctx context.Context, sessionID string) error {
	b.mu.Lock()
	sess, ok := b.sessions[sessionID]
	delete(b.sessions, sessionID)
	b.mu.Unlock()

	if b.SignOutErr != nil {
		return b.SignOutErr
	}
	if ok && b.Bus != nil {
		_ = b.Bus.Publish(ctx, sess.PrincipalID, domainauth.Event{Type: domainauth.EventSignedOut})
	}
	return nil
}

// ExpireSession force-expires a session to simulate backend-side expiry.
func (b *MemoryAuthBackend) ExpireSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sess, ok := b.sessions[sessionID]; ok {
		sess.ExpiresAt = time.Now().Add(-time.Minute)
		b.sessions[sessionID] = sess
	}
}

// MemorySessionStore is an in-memory ports.SessionStore.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.ClientSession
}

// NewMemorySessionStore creates an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.ClientSession)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.ClientSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.ClientSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Expired() {
		return domainauth.ClientSession{}, apperrors.NotFound("session not found")
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) DeleteByPrincipal(_ context.Context, principalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.PrincipalID == principalID {
			delete(s.sessions, id)
		}
	}
	return nil
}

// MemoryUserStore is an in-memory ports.UserStore. GetByIDFunc, when set,
// replaces the map lookup (useful for simulating slow or failing fetches).
type MemoryUserStore struct {
	CreateErr   error
	GetByIDFunc func(ctx context.Context, id string) (*model.UserRecord, error)

	mu    sync.Mutex
	users map[string]model.UserRecord
}

// NewMemoryUserStore creates an empty store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]model.UserRecord)}
}

// Seed inserts a record directly.
func (s *MemoryUserStore) Seed(rec model.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[rec.ID] = rec
}

func (s *MemoryUserStore) Create(_ context.Context, req *model.CreateUserRequest) (*model.UserRecord, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	rec := model.UserRecord{
		ID:        req.ID,
		UserType:  req.UserType,
		Email:     req.Email,
		FullName:  req.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[rec.ID] = rec
	return &rec, nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (*model.UserRecord, error) {
	if s.GetByIDFunc != nil {
		return s.GetByIDFunc(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user record not found")
	}
	out := rec
	return &out, nil
}

func (s *MemoryUserStore) Update(_ context.Context, id string, req model.UpdateUserRequest) (*model.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user record not found")
	}
	if req.FullName != nil {
		rec.FullName = *req.FullName
	}
	rec.UpdatedAt = time.Now()
	s.users[id] = rec
	out := rec
	return &out, nil
}

// MemoryProfileStore is an in-memory ports.ProfileStore with per-operation
// error overrides.
type MemoryProfileStore struct {
	CreateJobSeekerErr error
	CreateEmployerErr  error
	GetJobSeekerFunc   func(ctx context.Context, id string) (*model.JobSeekerProfile, error)
	GetEmployerFunc    func(ctx context.Context, id string) (*model.EmployerProfile, error)

	mu         sync.Mutex
	jobSeekers map[string]model.JobSeekerProfile
	employers  map[string]model.EmployerProfile
}

// NewMemoryProfileStore creates an empty store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		jobSeekers: make(map[string]model.JobSeekerProfile),
		employers:  make(map[string]model.EmployerProfile),
	}
}

// SeedJobSeeker inserts a job seeker profile directly.
func (s *MemoryProfileStore) SeedJobSeeker(p model.JobSeekerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobSeekers[p.ID] = p
}

// SeedEmployer inserts an employer profile directly.
func (s *MemoryProfileStore) SeedEmployer(p model.EmployerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employers[p.ID] = p
}

func (s *MemoryProfileStore) CreateJobSeeker(_ context.Context, id string, req *model.CreateJobSeekerProfileRequest) (*model.JobSeekerProfile, error) {
	if s.CreateJobSeekerErr != nil {
		return nil, s.CreateJobSeekerErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobSeekers[id]; exists {
		return nil, apperrors.Conflict("profile already exists")
	}
	p := model.JobSeekerProfile{
		ID:                 id,
		YearsExperience:    req.YearsExperience,
		Skills:             req.Skills,
		PreferredSchedule:  req.PreferredSchedule,
		PreferredLocation:  req.PreferredLocation,
		AvailabilityStatus: req.AvailabilityStatus,
		Bio:                req.Bio,
		UpdatedAt:          time.Now(),
	}
	s.jobSeekers[id] = p
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) CreateEmployerShell(_ context.Context, id string) (*model.EmployerProfile, error) {
	if s.CreateEmployerErr != nil {
		return nil, s.CreateEmployerErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employers[id]; exists {
		return nil, apperrors.Conflict("profile already exists")
	}
	p := model.EmployerProfile{ID: id, UpdatedAt: time.Now()}
	s.employers[id] = p
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) GetJobSeeker(ctx context.Context, id string) (*model.JobSeekerProfile, error) {
	if s.GetJobSeekerFunc != nil {
		return s.GetJobSeekerFunc(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.jobSeekers[id]
	if !ok {
		return nil, apperrors.NotFound("jobseeker profile not found")
	}
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) GetEmployer(ctx context.Context, id string) (*model.EmployerProfile, error) {
	if s.GetEmployerFunc != nil {
		return s.GetEmployerFunc(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.employers[id]
	if !ok {
		return nil, apperrors.NotFound("employer profile not found")
	}
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) UpdateJobSeeker(_ context.Context, id string, req model.UpdateJobSeekerProfileRequest) (*model.JobSeekerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.jobSeekers[id]
	if !ok {
		return nil, apperrors.NotFound("jobseeker profile not found")
	}
	if req.YearsExperience != nil {
		p.YearsExperience = *req.YearsExperience
	}
	if req.Skills != nil {
		p.Skills = *req.Skills
	}
	if req.PreferredSchedule != nil {
		p.PreferredSchedule = *req.PreferredSchedule
	}
	if req.PreferredLocation != nil {
		p.PreferredLocation = *req.PreferredLocation
	}
	if req.ResumeURL != nil {
		p.ResumeURL = req.ResumeURL
	}
	if req.AvailabilityStatus != nil {
		p.AvailabilityStatus = *req.AvailabilityStatus
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	p.UpdatedAt = time.Now()
	s.jobSeekers[id] = p
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) UpdateEmployer(_ context.Context, id string, req model.UpdateEmployerProfileRequest) (*model.EmployerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.employers[id]
	if !ok {
		return nil, apperrors.NotFound("employer profile not found")
	}
	if req.CompanyName != nil {
		p.CompanyName = *req.CompanyName
	}
	if req.CompanySize != nil {
		p.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		p.Industry = *req.Industry
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	p.UpdatedAt = time.Now()
	s.employers[id] = p
	out := p
	return &out, nil
}
