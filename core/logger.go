package core

// Logger logs messages and reports errors.
// args may hold errors, extra fields (map[string]interface{}) and a Participant.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Participant identifies the student a log entry is about.
type Participant struct {
	Email    string
	Activity string
}
