package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"churchattendance/internal/domain"
)

// fakeDraftStore is an in-memory DraftStore for tests.
type fakeDraftStore struct {
	mu       sync.Mutex
	drafts   map[string]domain.RegistrationDraft
	claims   map[string]string
	nextID   int
	saveErr  error
	released int
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]domain.RegistrationDraft), claims: make(map[string]string)}
}

func (f *fakeDraftStore) Create(ctx context.Context, d domain.RegistrationDraft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("draft-%d", f.nextID)
	f.drafts[id] = d
	return id, nil
}

func (f *fakeDraftStore) Get(ctx context.Context, id string) (domain.RegistrationDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[id]
	if !ok {
		return domain.RegistrationDraft{}, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeDraftStore) Save(ctx context.Context, id string, d domain.RegistrationDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	f.drafts[id] = d
	return nil
}

func (f *fakeDraftStore) Update(ctx context.Context, id string, fn domain.DraftUpdate) (domain.RegistrationDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[id]
	if !ok {
		return domain.RegistrationDraft{}, domain.ErrNotFound
	}
	if f.claims[id] != "" {
		return domain.RegistrationDraft{}, domain.ErrDraftBusy
	}
	next, err := fn(d)
	if err != nil {
		return domain.RegistrationDraft{}, err
	}
	if f.saveErr != nil {
		return domain.RegistrationDraft{}, f.saveErr
	}
	f.drafts[id] = next
	return next, nil
}

func (f *fakeDraftStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claims[id] != "" {
		return domain.ErrDraftBusy
	}
	delete(f.drafts, id)
	return nil
}

func (f *fakeDraftStore) Claim(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drafts[id]; !ok {
		return "", domain.ErrNotFound
	}
	if f.claims[id] != "" {
		return "", domain.ErrDraftBusy
	}
	f.nextID++
	token := fmt.Sprintf("claim-%d", f.nextID)
	f.claims[id] = token
	return token, nil
}

func (f *fakeDraftStore) Release(ctx context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claims[id] == token {
		delete(f.claims, id)
		f.released++
	}
	return nil
}

// fakeAttendanceRepo records calls and keeps rows in memory.
// When entered is set, CreateBatch signals it and then waits for proceed.
type fakeAttendanceRepo struct {
	mu         sync.Mutex
	entered    chan struct{}
	proceed    chan struct{}
	rows       []*domain.AttendanceRecord
	batchCalls int
	createErr  error
	listErr    error
	lastFilter domain.AttendanceFilter
	lastParams domain.PaginationParams
	summaryDay string
	setCalls   []bool
}

func (f *fakeAttendanceRepo) CreateBatch(ctx context.Context, records []*domain.AttendanceRecord) error {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.proceed
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	if f.createErr != nil {
		return f.createErr
	}
	for i, r := range records {
		r.ID = fmt.Sprintf("att-%d", len(f.rows)+i+1)
	}
	f.rows = append(f.rows, records...)
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter domain.AttendanceFilter, params domain.PaginationParams) ([]*domain.AttendanceRecord, int, error) {
	f.lastFilter, f.lastParams = filter, params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	start := params.Offset()
	if start >= len(f.rows) {
		return []*domain.AttendanceRecord{}, len(f.rows), nil
	}
	end := min(start+params.PageSize, len(f.rows))
	return f.rows[start:end], len(f.rows), nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context, filter domain.AttendanceFilter) ([]*domain.AttendanceRecord, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeAttendanceRepo) ListByCode(ctx context.Context, code int, telephone string) ([]*domain.AttendanceRecord, error) {
	out := []*domain.AttendanceRecord{}
	for _, r := range f.rows {
		if r.AttendanceCode == code && r.GuardianTelephone == telephone {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetAttended(ctx context.Context, id string, attended bool) (*domain.AttendanceRecord, error) {
	f.setCalls = append(f.setCalls, attended)
	for _, r := range f.rows {
		if r.ID == id {
			r.HasAttended = attended
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAttendanceRepo) Summary(ctx context.Context, day string) ([]*domain.SlotSummary, error) {
	f.summaryDay = day
	return []*domain.SlotSummary{{PreferredTime: "9:00am", Registered: 2, Attended: 1}}, nil
}

// fakeScheduleRepo is an in-memory ScheduleRepository.
type fakeScheduleRepo struct {
	byID     map[string]*domain.ScheduleEvent
	order    []string
	getErr   error
	getCalls int
}

func newFakeScheduleRepo(events ...*domain.ScheduleEvent) *fakeScheduleRepo {
	f := &fakeScheduleRepo{byID: make(map[string]*domain.ScheduleEvent)}
	for _, e := range events {
		f.byID[e.ID] = e
		f.order = append(f.order, e.ID)
	}
	return f
}

func (f *fakeScheduleRepo) Create(ctx context.Context, e *domain.ScheduleEvent) error {
	e.ID = fmt.Sprintf("ev-%d", len(f.order)+1)
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScheduleRepo) Latest(ctx context.Context) (*domain.ScheduleEvent, error) {
	if len(f.order) == 0 {
		return nil, domain.ErrNotFound
	}
	return f.byID[f.order[len(f.order)-1]], nil
}

func (f *fakeScheduleRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ScheduleEvent, int, error) {
	out := []*domain.ScheduleEvent{}
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, len(out), nil
}

// fakeFamilyRepo keeps members keyed by id.
type fakeFamilyRepo struct {
	byID map[string]*domain.FamilyMember
	next int
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{byID: make(map[string]*domain.FamilyMember)}
}

func (f *fakeFamilyRepo) Create(ctx context.Context, m *domain.FamilyMember) error {
	f.next++
	m.ID = fmt.Sprintf("fm-%d", f.next)
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeFamilyRepo) GetByID(ctx context.Context, guardianID, id string) (*domain.FamilyMember, error) {
	m, ok := f.byID[id]
	if !ok || m.GuardianID != guardianID {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeFamilyRepo) Update(ctx context.Context, m *domain.FamilyMember) error {
	old, ok := f.byID[m.ID]
	if !ok || old.GuardianID != m.GuardianID {
		return domain.ErrNotFound
	}
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeFamilyRepo) Delete(ctx context.Context, guardianID, id string) error {
	m, ok := f.byID[id]
	if !ok || m.GuardianID != guardianID {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeFamilyRepo) List(ctx context.Context, guardianID string, params domain.PaginationParams) ([]*domain.FamilyMember, int, error) {
	out := []*domain.FamilyMember{}
	for _, m := range f.byID {
		if m.GuardianID == guardianID {
			out = append(out, m)
		}
	}
	return out, len(out), nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	identities map[string]*domain.AuthIdentity
	users      map[string]*domain.UserAccount
	lookupErr  error
	created    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		identities: make(map[string]*domain.AuthIdentity),
		users:      make(map[string]*domain.UserAccount),
	}
}

func (f *fakeUserRepo) add(identity *domain.AuthIdentity, user *domain.UserAccount) {
	f.identities[identity.Email] = identity
	if user != nil {
		user.AuthID = identity.ID
		f.users[identity.ID] = user
	}
}

func (f *fakeUserRepo) GetIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if i, ok := f.identities[email]; ok {
		return i, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByAuthID(ctx context.Context, authID string) (*domain.UserAccount, error) {
	if u, ok := f.users[authID]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) CreateWithIdentity(ctx context.Context, identity *domain.AuthIdentity, user *domain.UserAccount) error {
	if _, ok := f.identities[identity.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.created++
	identity.ID = fmt.Sprintf("auth-%d", f.created)
	user.UserID = fmt.Sprintf("user-%d", f.created)
	user.Email = identity.Email
	f.add(identity, user)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.UserAccount, int, error) {
	out := []*domain.UserAccount{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

// fakeAccountRepo implements domain.AccountRepository for tests.
type fakeAccountRepo struct {
	byID       map[string]*domain.PendingAccount
	approveErr error
	lastRole   string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: make(map[string]*domain.PendingAccount)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *domain.PendingAccount) error {
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	a.ID = fmt.Sprintf("acc-%d", len(f.byID)+1)
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*domain.PendingAccount, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) ListPending(ctx context.Context, params domain.PaginationParams) ([]*domain.PendingAccount, int, error) {
	out := []*domain.PendingAccount{}
	for _, a := range f.byID {
		if !a.Registered {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func (f *fakeAccountRepo) Approve(ctx context.Context, id, role string, now time.Time) (*domain.UserAccount, error) {
	f.lastRole = role
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if a.Registered {
		return nil, domain.ErrAlreadyApproved
	}
	a.Registered = true
	return &domain.UserAccount{UserID: "user-" + id, AuthID: "auth-" + id, Name: a.Name, Email: a.Email, Contact: a.ContactNumber, Role: role, CreatedAt: now}, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// fakeTokens issues and verifies opaque tokens from a map.
type fakeTokens struct {
	issued map[string]*domain.TokenClaims
	n      int
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: make(map[string]*domain.TokenClaims)}
}

func (f *fakeTokens) Issue(identity *domain.Identity, expiry time.Duration) (string, *domain.TokenClaims, error) {
	f.n++
	claims := &domain.TokenClaims{
		TokenID:   fmt.Sprintf("jti-%d", f.n),
		AuthID:    identity.AuthID,
		UserID:    identity.UserID,
		Email:     identity.Email,
		Role:      identity.Role,
		ExpiresAt: time.Now().Add(expiry),
	}
	token := fmt.Sprintf("token-%d", f.n)
	f.issued[token] = claims
	return token, claims, nil
}

func (f *fakeTokens) Verify(token string) (*domain.TokenClaims, error) {
	if c, ok := f.issued[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// fakeRevocations is a map-backed RevocationStore.
type fakeRevocations struct {
	revoked map[string]time.Time
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: make(map[string]time.Time)}
}

func (f *fakeRevocations) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[tokenID] = until
	return nil
}

func (f *fakeRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

// fakeEmailService records sent emails.
type fakeEmailService struct {
	requested []*domain.AccountEmailData
	approved  []*domain.AccountEmailData
	err       error
}

func (f *fakeEmailService) SendAccountRequested(ctx context.Context, data *domain.AccountEmailData) error {
	f.requested = append(f.requested, data)
	return f.err
}

func (f *fakeEmailService) SendAccountApproved(ctx context.Context, data *domain.AccountEmailData) error {
	f.approved = append(f.approved, data)
	return f.err
}

// fakeExporter writes one line per record.
type fakeExporter struct{}

func (fakeExporter) Write(w io.Writer, records []*domain.AttendanceRecord) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.ChildFirstName); err != nil {
			return err
		}
	}
	return nil
}

// fixedCodes returns the same code on every draw.
type fixedCodes struct {
	code int
	err  error
}

func (f fixedCodes) Generate() (int, error) { return f.code, f.err }
