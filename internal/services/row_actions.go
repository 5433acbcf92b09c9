package services

import (
	"context"
	"fmt"

	"churchattendance/internal/domain"
)

type rowActionDispatcher struct {
	attendance domain.AttendanceService
	family     domain.FamilyService
	accounts   domain.AccountService
}

// NewRowActionDispatcher routes table row commands to the owning service.
func NewRowActionDispatcher(attendance domain.AttendanceService, family domain.FamilyService, accounts domain.AccountService) domain.RowActionDispatcher {
	return &rowActionDispatcher{attendance: attendance, family: family, accounts: accounts}
}

// Dispatch runs exactly one mutation keyed by cmd.RecordID. Toggles return the updated row
// for in-place patching; every other command asks the caller to refetch the page.
func (d *rowActionDispatcher) Dispatch(ctx context.Context, cmd domain.RowCommand) (*domain.CommandResult, error) {
	if cmd.RecordID == "" {
		return nil, fmt.Errorf("record id is required: %w", domain.ErrInvalidInput)
	}
	result := &domain.CommandResult{Kind: cmd.Kind, ID: cmd.RecordID}

	switch cmd.Kind {
	case domain.CmdToggleAttendance:
		rec, err := d.attendance.SetAttended(ctx, cmd.RecordID, cmd.Attended)
		if err != nil {
			return nil, err
		}
		result.Row = rec
	case domain.CmdUpdateFamilyMember:
		if cmd.ActorID == "" {
			return nil, domain.ErrForbidden
		}
		m, err := d.family.Update(ctx, cmd.ActorID, cmd.RecordID, cmd.FamilyPatch)
		if err != nil {
			return nil, err
		}
		result.Row = m
		result.Refetch = true
	case domain.CmdDeleteFamilyMember:
		if cmd.ActorID == "" {
			return nil, domain.ErrForbidden
		}
		if err := d.family.Delete(ctx, cmd.ActorID, cmd.RecordID); err != nil {
			return nil, err
		}
		result.Refetch = true
	case domain.CmdApproveAccount:
		user, err := d.accounts.Approve(ctx, cmd.RecordID)
		if err != nil {
			return nil, err
		}
		result.Row = user
		result.Refetch = true
	default:
		return nil, fmt.Errorf("unknown command %q: %w", cmd.Kind, domain.ErrInvalidInput)
	}
	return result, nil
}
