package domain

// ModalKind names the variant of a Modal.
type ModalKind string

const (
	ModalClosed           ModalKind = "closed"
	ModalAdding           ModalKind = "adding"
	ModalEditing          ModalKind = "editing"
	ModalConfirmingDelete ModalKind = "confirming_delete"
)

// Modal is the dialog state of a report table. Exactly one variant is active;
// the set of variants is closed to this package.
type Modal interface {
	Kind() ModalKind
	isModal()
}

// Closed means no dialog is open.
type Closed struct{}

// Adding holds the draft of a record that does not exist yet.
type Adding struct {
	Draft Record
}

// Editing holds the draft of an existing record identified by TargetID.
type Editing struct {
	Draft    Record
	TargetID int
}

// ConfirmingDelete asks the user to confirm removal of TargetID.
type ConfirmingDelete struct {
	TargetID int
	Name     string
}

func (Closed) Kind() ModalKind           { return ModalClosed }
func (Adding) Kind() ModalKind           { return ModalAdding }
func (Editing) Kind() ModalKind          { return ModalEditing }
func (ConfirmingDelete) Kind() ModalKind { return ModalConfirmingDelete }

func (Closed) isModal()           {}
func (Adding) isModal()           {}
func (Editing) isModal()          {}
func (ConfirmingDelete) isModal() {}

// DraftOf returns the draft carried by m, if any.
func DraftOf(m Modal) (Record, bool) {
	switch v := m.(type) {
	case Adding:
		return v.Draft, true
	case Editing:
		return v.Draft, true
	}
	return Record{}, false
}

// ModalTitle is the heading shown on the dialog.
func ModalTitle(m Modal) string {
	switch m.(type) {
	case Adding:
		return "Add New Entry"
	case Editing:
		return "Edit Entry"
	case ConfirmingDelete:
		return "Confirm Delete"
	}
	return ""
}
