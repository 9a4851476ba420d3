package action

import "fmt"

// UnknownTokenError reports an action name, modifier, or key token that is
// not part of the recognized vocabulary.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown action token %q", e.Token)
}

// InvalidParameterError reports a parametric action argument outside its
// valid range (e.g. fire speed or repeat count).
type InvalidParameterError struct {
	Name  string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Name, e.Value)
}
