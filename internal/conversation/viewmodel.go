package conversation

import (
	"errors"
	"strings"

	"converso/internal/logging"
)

// ErrEmptyDraft is returned by Send when RejectEmpty is set and the draft is blank.
var ErrEmptyDraft = errors.New("draft is empty")

// SendPolicy controls what Send does around the draft.
// The zero value keeps the draft after sending and accepts empty drafts.
type SendPolicy struct {
	ClearDraft  bool
	RejectEmpty bool
}

// ViewModel owns the screen state: the message store and the draft text.
type ViewModel struct {
	store  *Store
	draft  string
	policy SendPolicy
}

// NewViewModel wraps store. A nil store starts empty.
func NewViewModel(store *Store, policy SendPolicy) *ViewModel {
	if store == nil {
		store = NewStore()
	}
	return &ViewModel{store: store, policy: policy}
}

// Store returns the backing message store.
func (vm *ViewModel) Store() *Store { return vm.store }

// Draft returns the current draft text.
func (vm *ViewModel) Draft() string { return vm.draft }

// SetDraft replaces the draft text.
func (vm *ViewModel) SetDraft(s string) { vm.draft = s }

// Policy returns the active send policy.
func (vm *ViewModel) Policy() SendPolicy { return vm.policy }

// SetPolicy replaces the send policy; the store and draft are untouched.
func (vm *ViewModel) SetPolicy(p SendPolicy) { vm.policy = p }

// Send appends the draft as a User message.
func (vm *ViewModel) Send() (Message, error) {
	if vm.policy.RejectEmpty && strings.TrimSpace(vm.draft) == "" {
		logging.UIDebug("send rejected: empty draft")
		return Message{}, ErrEmptyDraft
	}

	logging.UI("send pressed")
	msg := vm.store.Append(SenderUser, vm.draft)
	if vm.policy.ClearDraft {
		vm.draft = ""
	}
	return msg, nil
}
