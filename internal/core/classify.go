package core

import "strings"

// Category is the listing an attendee appears in.
type Category int

const (
	InPerson Category = iota
	Remote
)

// String returns the category label used in logs and metrics.
func (c Category) String() string {
	switch c {
	case Remote:
		return "remote"
	default:
		return "in_person"
	}
}

// remoteModes are the attendance values that mean remote participation.
var remoteModes = map[string]struct{}{
	"remote":  {},
	"virtual": {},
	"online":  {},
}

// Classify maps an attendance mode to a category. Matching ignores case and
// surrounding whitespace; anything unrecognised, including "", is InPerson.
func Classify(mode string) Category {
	if _, ok := remoteModes[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return Remote
	}
	return InPerson
}

// Buckets holds the two listings, each in registry order.
type Buckets struct {
	InPerson []Attendee
	Remote   []Attendee
}

// Partition splits the registry by category.
func Partition(reg *Registry) Buckets {
	var b Buckets
	for _, a := range reg.All() {
		if Classify(a.AttendanceMode) == Remote {
			b.Remote = append(b.Remote, a)
		} else {
			b.InPerson = append(b.InPerson, a)
		}
	}
	return b
}
