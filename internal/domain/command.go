package domain

import "context"

// CommandKind names a row action from an admin or family table.
type CommandKind string

const (
	CmdToggleAttendance   CommandKind = "toggle_attendance"
	CmdUpdateFamilyMember CommandKind = "update_family_member"
	CmdDeleteFamilyMember CommandKind = "delete_family_member"
	CmdApproveAccount     CommandKind = "approve_account"
)

// RowCommand is a single mutation keyed by record id.
// ActorID is the user_list id of the caller and scopes family commands.
type RowCommand struct {
	Kind     CommandKind
	RecordID string
	ActorID  string

	Attended    bool
	FamilyPatch FamilyMemberPatch
}

// CommandResult tells the caller how to refresh its table after a command.
// swagger:model CommandResult
type CommandResult struct {
	Kind    CommandKind `json:"kind"`
	ID      string      `json:"id"`
	Row     any         `json:"row,omitempty"`
	Refetch bool        `json:"refetch"`
}

// RowActionDispatcher executes row commands.
type RowActionDispatcher interface {
	Dispatch(ctx context.Context, cmd RowCommand) (*CommandResult, error)
}
