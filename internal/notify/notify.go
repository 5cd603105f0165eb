// Package notify shows a local desktop notification when the countdown
// ends, mirroring the Pushover send on the machine the app runs on. It
// uses native mechanisms: osascript on macOS, notify-send on Linux.
// Everywhere else it degrades to a no-op; the push is the primary
// channel and never depends on this package.
package notify

// Notifier sends desktop notifications.
type Notifier interface {
	// Send shows a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound additionally plays the platform notification sound.
	SendWithSound(title, message string) error

	// IsSupported reports whether this platform can show notifications.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(title, message string) error {
	return nil
}

func (n *noopNotifier) SendWithSound(title, message string) error {
	return nil
}

func (n *noopNotifier) IsSupported() bool {
	return false
}

// New creates a platform-specific notifier, or a no-op one when the
// platform has no usable notification mechanism.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}
