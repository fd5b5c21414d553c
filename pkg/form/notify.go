package form

import "log/slog"

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification messages fired by Submit.
const (
	MessageSubmitted        = "Form submitted successfully!"
	MessageSubmissionFailed = "Submission failed. Please try again."
	MessageSubmissionFault  = "An error occurred. Please try again later."
)

// Notification is a transient message about a submission outcome.
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives submission notifications.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type logNotifier struct {
	logger *slog.Logger
}

func (l logNotifier) Notify(n Notification) {
	if n.Level == LevelError {
		l.logger.Warn(n.Message, slog.String("level", string(n.Level)))
		return
	}
	l.logger.Info(n.Message, slog.String("level", string(n.Level)))
}
