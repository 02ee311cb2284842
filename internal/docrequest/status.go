package docrequest

// Status is the lifecycle state of a document request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOnProcess Status = "on process"
	StatusReady     Status = "ready for pick-up"
	StatusReleased  Status = "released"
	StatusDeclined  Status = "declined"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusOnProcess, StatusDeclined},
	StatusOnProcess: {StatusReady},
	StatusReady:     {StatusReleased},
	StatusReleased:  {},
	StatusDeclined:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether moving from s to next is permitted.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Payment methods accepted at creation.
const (
	MethodCash  = "cash"
	MethodGCash = "gcash"
	MethodFree  = "free"
)

func ValidMethod(method string) bool {
	return method == MethodCash || method == MethodGCash || method == MethodFree
}
