package event_bus

const SubjectsChanged EventType = "subject.changed"

// SubjectListChanged is published after a subject was added, updated or removed.
// Count is the size of the list after the change.
type SubjectListChanged struct {
	Count int
}
