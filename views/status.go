package views

// Severity tags a user-facing status message.
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySuccess
	SeverityError
	SeverityWarning
)

// Status is a user-facing message with a severity tag. Views clear it either
// explicitly or through a scheduled auto-clear.
type Status struct {
	Text     string
	Severity Severity
}

// IsZero reports whether no message is set.
func (s Status) IsZero() bool { return s.Text == "" }

func success(text string) Status { return Status{Text: text, Severity: SeveritySuccess} }
func failure(text string) Status { return Status{Text: text, Severity: SeverityError} }
func warning(text string) Status { return Status{Text: text, Severity: SeverityWarning} }
