package auction

import (
	"fmt"
	"strings"
)

// State is the lifecycle stage of an auction record. The numeric values are
// persisted, do not reorder.
type State uint8

const (
	// StateNone is the sentinel of a provisioned but never opened record
	StateNone State = iota
	StateCreated
	StateClosed
	StateCancelled
)

var stateNames = map[State]string{
	StateNone:      "none",
	StateCreated:   "created",
	StateClosed:    "closed",
	StateCancelled: "cancelled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

func (s State) IsTerminal() bool {
	return s == StateClosed || s == StateCancelled
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseState(str string) (State, error) {
	for s, name := range stateNames {
		if strings.EqualFold(name, str) {
			return s, nil
		}
	}
	return StateNone, fmt.Errorf("unknown auction state %q", str)
}
