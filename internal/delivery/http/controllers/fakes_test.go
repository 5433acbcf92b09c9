package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testUUID  = "6f1c2a8e-3b4d-4c5e-9f6a-7b8c9d0e1f2a"
	testUUID2 = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

// decodeEnvelope decodes the response body and re-decodes data into out when out is non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, out any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if out != nil {
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return envelope
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	draft        domain.RegistrationDraft
	err          error
	confirmation *domain.Confirmation
	records      []*domain.AttendanceRecord

	lastDraftID       string
	lastIndex         int
	lastGuardianPatch domain.GuardianPatch
	lastChildPatch    domain.ChildPatch
	lastEventID       string
	lastTime          string
	lastSubmitted     domain.RegistrationDraft
	lastCode          int
	lastTelephone     string
	cancelled         bool
}

func (f *fakeRegistrationService) StartDraft(ctx context.Context) (string, domain.RegistrationDraft, error) {
	return testUUID, f.draft, f.err
}

func (f *fakeRegistrationService) GetDraft(ctx context.Context, draftID string) (domain.RegistrationDraft, error) {
	f.lastDraftID = draftID
	return f.draft, f.err
}

func (f *fakeRegistrationService) UpdateGuardian(ctx context.Context, draftID string, patch domain.GuardianPatch) (domain.RegistrationDraft, error) {
	f.lastDraftID = draftID
	f.lastGuardianPatch = patch
	return f.draft, f.err
}

func (f *fakeRegistrationService) SelectEvent(ctx context.Context, draftID, eventID, preferredTime string) (domain.RegistrationDraft, error) {
	f.lastDraftID, f.lastEventID, f.lastTime = draftID, eventID, preferredTime
	return f.draft, f.err
}

func (f *fakeRegistrationService) AddChild(ctx context.Context, draftID string) (domain.RegistrationDraft, error) {
	f.lastDraftID = draftID
	return f.draft, f.err
}

func (f *fakeRegistrationService) UpdateChild(ctx context.Context, draftID string, index int, patch domain.ChildPatch) (domain.RegistrationDraft, error) {
	f.lastDraftID, f.lastIndex, f.lastChildPatch = draftID, index, patch
	return f.draft, f.err
}

func (f *fakeRegistrationService) RemoveChild(ctx context.Context, draftID string, index int) (domain.RegistrationDraft, error) {
	f.lastDraftID, f.lastIndex = draftID, index
	return f.draft, f.err
}

func (f *fakeRegistrationService) Advance(ctx context.Context, draftID string) error {
	f.lastDraftID = draftID
	return f.err
}

func (f *fakeRegistrationService) CancelDraft(ctx context.Context, draftID string) error {
	f.lastDraftID = draftID
	f.cancelled = f.err == nil
	return f.err
}

func (f *fakeRegistrationService) SubmitDraft(ctx context.Context, draftID string) (*domain.Confirmation, error) {
	f.lastDraftID = draftID
	return f.confirmation, f.err
}

func (f *fakeRegistrationService) Submit(ctx context.Context, draft domain.RegistrationDraft) (*domain.Confirmation, error) {
	f.lastSubmitted = draft
	return f.confirmation, f.err
}

func (f *fakeRegistrationService) LookupCode(ctx context.Context, code int, telephone string) ([]*domain.AttendanceRecord, error) {
	f.lastCode, f.lastTelephone = code, telephone
	return f.records, f.err
}

// fakeAttendanceService implements domain.AttendanceService.
type fakeAttendanceService struct {
	records   []*domain.AttendanceRecord
	total     int
	summary   []*domain.SlotSummary
	exportOut string
	err       error

	lastFilter domain.AttendanceFilter
	lastParams domain.PaginationParams
	lastDay    string
}

func (f *fakeAttendanceService) List(ctx context.Context, filter domain.AttendanceFilter, params domain.PaginationParams) ([]*domain.AttendanceRecord, int, error) {
	f.lastFilter, f.lastParams = filter, params
	return f.records, f.total, f.err
}

func (f *fakeAttendanceService) SetAttended(ctx context.Context, id string, attended bool) (*domain.AttendanceRecord, error) {
	return nil, f.err
}

func (f *fakeAttendanceService) Export(ctx context.Context, filter domain.AttendanceFilter, w io.Writer) error {
	f.lastFilter = filter
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.exportOut)
	return err
}

func (f *fakeAttendanceService) Summary(ctx context.Context, day string) ([]*domain.SlotSummary, error) {
	f.lastDay = day
	return f.summary, f.err
}

// fakeDispatcher implements domain.RowActionDispatcher.
type fakeDispatcher struct {
	result  *domain.CommandResult
	err     error
	lastCmd domain.RowCommand
	calls   int
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, cmd domain.RowCommand) (*domain.CommandResult, error) {
	f.calls++
	f.lastCmd = cmd
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.CommandResult{Kind: cmd.Kind, ID: cmd.RecordID}, nil
}

// fakeScheduleService implements domain.ScheduleService.
type fakeScheduleService struct {
	event  *domain.ScheduleEvent
	events []*domain.ScheduleEvent
	total  int
	err    error

	lastName   string
	lastDate   string
	lastSlots  []string
	lastID     string
	lastParams domain.PaginationParams
}

func (f *fakeScheduleService) Create(ctx context.Context, name, date string, slots []string) (*domain.ScheduleEvent, error) {
	f.lastName, f.lastDate, f.lastSlots = name, date, slots
	return f.event, f.err
}

func (f *fakeScheduleService) GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeScheduleService) Latest(ctx context.Context) (*domain.ScheduleEvent, error) {
	return f.event, f.err
}

func (f *fakeScheduleService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ScheduleEvent, int, error) {
	f.lastParams = params
	return f.events, f.total, f.err
}

// fakeFamilyService implements domain.FamilyService.
type fakeFamilyService struct {
	members []*domain.FamilyMember
	total   int
	err     error

	lastGuardianID string
	lastParams     domain.PaginationParams
	lastAdded      *domain.FamilyMember
}

func (f *fakeFamilyService) List(ctx context.Context, guardianID string, params domain.PaginationParams) ([]*domain.FamilyMember, int, error) {
	f.lastGuardianID, f.lastParams = guardianID, params
	return f.members, f.total, f.err
}

func (f *fakeFamilyService) Add(ctx context.Context, m *domain.FamilyMember) (*domain.FamilyMember, error) {
	f.lastAdded = m
	if f.err != nil {
		return nil, f.err
	}
	m.ID = testUUID2
	return m, nil
}

func (f *fakeFamilyService) Update(ctx context.Context, guardianID, id string, patch domain.FamilyMemberPatch) (*domain.FamilyMember, error) {
	return nil, f.err
}

func (f *fakeFamilyService) Delete(ctx context.Context, guardianID, id string) error {
	return f.err
}

// fakeAccountService implements domain.AccountService.
type fakeAccountService struct {
	pending []*domain.PendingAccount
	users   []*domain.UserAccount
	total   int
	err     error

	lastName, lastEmail, lastPassword, lastContact string
	lastParams                                     domain.PaginationParams
}

func (f *fakeAccountService) RequestAccount(ctx context.Context, name, email, password, contact string) (*domain.PendingAccount, error) {
	f.lastName, f.lastEmail, f.lastPassword, f.lastContact = name, email, password, contact
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PendingAccount{ID: testUUID, Name: name, Email: email, ContactNumber: contact}, nil
}

func (f *fakeAccountService) ListPending(ctx context.Context, params domain.PaginationParams) ([]*domain.PendingAccount, int, error) {
	f.lastParams = params
	return f.pending, f.total, f.err
}

func (f *fakeAccountService) Approve(ctx context.Context, id string) (*domain.UserAccount, error) {
	return nil, f.err
}

func (f *fakeAccountService) ListUsers(ctx context.Context, params domain.PaginationParams) ([]*domain.UserAccount, int, error) {
	f.lastParams = params
	return f.users, f.total, f.err
}

func (f *fakeAccountService) GetByAuthID(ctx context.Context, authID string) (*domain.UserAccount, error) {
	return nil, f.err
}

// fakeAuthService implements domain.AuthService.
type fakeAuthService struct {
	token     string
	session   *domain.Session
	err       error
	lastEmail string
	lastToken string
	signedOut bool
}

func (f *fakeAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.Session, error) {
	f.lastEmail = email
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.session, nil
}

func (f *fakeAuthService) SignOut(ctx context.Context, token string) error {
	f.lastToken = token
	f.signedOut = f.err == nil
	return f.err
}

func (f *fakeAuthService) ResolveIdentity(ctx context.Context, token string) (*domain.Session, error) {
	f.lastToken = token
	return f.session, f.err
}

func (f *fakeAuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	return f.err
}
