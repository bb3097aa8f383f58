package view

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
)

// Notice texts shown after user actions
const (
	MsgCreated       = "Student created successfully"
	MsgUpdated       = "Student updated successfully"
	MsgSubmitFailed  = "Error submitting student"
	MsgDeleted       = "Student deleted successfully"
	MsgDeleteFailed  = "Error deleting student"
	MsgFetchFailed   = "Error fetching students"
	MsgConfirmDelete = "Are you sure you want to delete this student?"
)

// NoticeKind separates success from failure notices
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the message a front-end shows after an action. The zero Notice means nothing to show.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// IsZero reports whether there is nothing to show
func (n Notice) IsZero() bool {
	return n.Kind == "" && n.Message == ""
}

func success(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }
func failure(msg string) Notice { return Notice{Kind: NoticeError, Message: msg} }

// Backend performs the record operations a Session needs
type Backend interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (models.Student, error)
	Delete(ctx context.Context, id int64) (models.Student, error)
}

// ConfirmFunc asks the user a yes/no question
type ConfirmFunc func(prompt string) bool

// Option configures a Session
type Option func(*Session)

// WithConfirm sets the delete confirmation hook. Without one, deletes proceed.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(s *Session) { s.confirm = confirm }
}

// WithClock sets the source of "today" for blank drafts
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets where failed backend calls are logged
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// Session runs one user's actions against a Backend and keeps the resulting State
type Session struct {
	backend Backend
	confirm ConfirmFunc
	now     func() time.Time
	logger  zerolog.Logger
	state   State
}

// NewSession creates a session with an empty list and a blank draft
func NewSession(backend Backend, opts ...Option) *Session {
	s := &Session{
		backend: backend,
		confirm: func(string) bool { return true },
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = Loaded(Reset(State{}, s.now()), nil)
	return s
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// SetDraft replaces the draft with the user's form input
func (s *Session) SetDraft(d Draft) {
	s.state.Draft = d
}

// Mount fetches the list once. On failure the list stays as it was.
func (s *Session) Mount(ctx context.Context) Notice {
	if err := s.refresh(ctx); err != nil {
		return failure(MsgFetchFailed)
	}
	return Notice{}
}

// Submit creates or updates the draft depending on whether it carries an id.
// On success the draft is cleared and the list refetched; on failure both stay untouched.
func (s *Session) Submit(ctx context.Context) Notice {
	draft := s.state.Draft

	var (
		msg string
		err error
	)
	if draft.IsUpdate() {
		var loaded *models.Student
		if record, ok := s.state.Find(*draft.ID); ok {
			loaded = &record
		}
		_, err = s.backend.Update(ctx, *draft.ID, draft.UpdateRequest(loaded))
		msg = MsgUpdated
	} else {
		_, err = s.backend.Create(ctx, draft.CreateRequest())
		msg = MsgCreated
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Error submitting student")
		return failure(MsgSubmitFailed)
	}

	s.refreshQuietly(ctx)
	s.state = AfterSubmit(s.state, s.now())
	return success(msg)
}

// Delete asks for confirmation, removes the record and refetches the list.
// A declined confirmation returns the zero Notice and changes nothing.
func (s *Session) Delete(ctx context.Context, id int64) Notice {
	if !s.confirm(MsgConfirmDelete) {
		return Notice{}
	}

	if _, err := s.backend.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return failure(MsgDeleteFailed)
	}

	s.refreshQuietly(ctx)
	s.state = AfterDelete(s.state, id, s.now())
	return success(MsgDeleted)
}

// EditRecord loads a listed record into the draft. It reports false when id is not listed.
func (s *Session) EditRecord(id int64) bool {
	record, ok := s.state.Find(id)
	if !ok {
		return false
	}
	s.state = Edit(s.state, record)
	return true
}

func (s *Session) refresh(ctx context.Context) error {
	records, err := s.backend.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching students")
		return err
	}
	s.state = Loaded(s.state, records)
	return nil
}

// refreshQuietly refetches after a mutation; a failed fetch keeps the previous list
func (s *Session) refreshQuietly(ctx context.Context) {
	_ = s.refresh(ctx)
}
