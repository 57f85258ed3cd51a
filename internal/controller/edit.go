package controller

// Draft is the in-progress, unsaved field state of a create/edit form.
// Field names follow the wire contract; required-ness is enforced by the
// form controls, not here.
type Draft interface {
	SetField(name, value string)
}

// SessionMode is the modal's state.
type SessionMode int

const (
	// ModeClosed means no modal is open.
	ModeClosed SessionMode = iota
	// ModeCreating means the modal holds a draft for a new entity.
	ModeCreating
	// ModeEditing means the modal holds a draft for an existing entity.
	ModeEditing
)

// String implements fmt.Stringer.
func (m SessionMode) String() string {
	switch m {
	case ModeClosed:
		return "Closed"
	case ModeCreating:
		return "Creating"
	case ModeEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// Session owns one create/edit modal: its open state, which entity is
// being edited, and the draft. A busy flag serializes mutations so a save
// or delete issued while one is already in flight is ignored. Deleting
// additionally requires an explicit confirmation step before any network
// call is allowed.
type Session[D Draft] struct {
	draft      D
	fresh      func() D
	lastErr    error
	editID     int
	mode       SessionMode
	busy       bool
	confirming bool
}

// NewSession creates a closed session. fresh produces the empty draft used
// for creation and after reset.
func NewSession[D Draft](fresh func() D) *Session[D] {
	return &Session[D]{
		fresh: fresh,
		draft: fresh(),
	}
}

// OpenForEdit opens the modal seeded from an existing entity's values.
func (s *Session[D]) OpenForEdit(id int, seeded D) {
	s.mode = ModeEditing
	s.editID = id
	s.draft = seeded
	s.busy = false
	s.confirming = false
	s.lastErr = nil
}

// OpenForCreate opens the modal with an empty draft.
func (s *Session[D]) OpenForCreate() {
	s.mode = ModeCreating
	s.editID = 0
	s.draft = s.fresh()
	s.busy = false
	s.confirming = false
	s.lastErr = nil
}

// UpdateField mutates one draft field. No-op while closed or busy.
func (s *Session[D]) UpdateField(name, value string) {
	if s.mode == ModeClosed || s.busy {
		return
	}
	s.draft.SetField(name, value)
}

// Draft returns the current draft.
func (s *Session[D]) Draft() D {
	return s.draft
}

// BeginSave marks the save in flight. It reports false - meaning no
// network call may be made - when the modal is closed or a mutation is
// already outstanding.
func (s *Session[D]) BeginSave() bool {
	if s.mode == ModeClosed || s.busy {
		return false
	}
	s.busy = true
	s.lastErr = nil
	return true
}

// FinishSave applies the save result. Success closes the modal and resets
// the draft; failure keeps the modal open with the draft intact so the
// user can correct and resubmit.
func (s *Session[D]) FinishSave(err error) {
	s.busy = false
	if err != nil {
		s.lastErr = err
		return
	}
	s.reset()
}

// RequestDelete arms the confirmation step. Deletion is irrevocable, so
// the confirmation is a hard precondition: no network call happens until
// ConfirmDelete. Valid only while editing and idle.
func (s *Session[D]) RequestDelete() bool {
	if s.mode != ModeEditing || s.busy {
		return false
	}
	s.confirming = true
	return true
}

// CancelDelete disarms a pending confirmation.
func (s *Session[D]) CancelDelete() {
	s.confirming = false
}

// ConfirmDelete marks the delete in flight. It reports false unless a
// confirmation is pending and no mutation is outstanding.
func (s *Session[D]) ConfirmDelete() bool {
	if s.mode != ModeEditing || !s.confirming || s.busy {
		return false
	}
	s.confirming = false
	s.busy = true
	s.lastErr = nil
	return true
}

// FinishDelete applies the delete result, mirroring FinishSave.
func (s *Session[D]) FinishDelete(err error) {
	s.busy = false
	if err != nil {
		s.lastErr = err
		return
	}
	s.reset()
}

// Close discards the draft without persisting anything.
func (s *Session[D]) Close() {
	s.reset()
}

func (s *Session[D]) reset() {
	s.mode = ModeClosed
	s.editID = 0
	s.draft = s.fresh()
	s.busy = false
	s.confirming = false
	s.lastErr = nil
}

// Mode returns the modal state.
func (s *Session[D]) Mode() SessionMode {
	return s.mode
}

// Open reports whether the modal is visible.
func (s *Session[D]) Open() bool {
	return s.mode != ModeClosed
}

// EditID returns the id of the entity being edited, or 0 when creating.
func (s *Session[D]) EditID() int {
	return s.editID
}

// Busy reports whether a save or delete is in flight.
func (s *Session[D]) Busy() bool {
	return s.busy
}

// Confirming reports whether a delete confirmation is pending.
func (s *Session[D]) Confirming() bool {
	return s.confirming
}

// Err returns the error from the most recent failed mutation, if any.
func (s *Session[D]) Err() error {
	return s.lastErr
}
