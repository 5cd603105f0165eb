//go:build !darwin && !linux

// No-op fallback for platforms without a wired notification mechanism.
package notify

type stubNotifier struct{}

func newPlatformNotifier() Notifier {
	return &stubNotifier{}
}

func (n *stubNotifier) Send(title, message string) error {
	return nil
}

func (n *stubNotifier) SendWithSound(title, message string) error {
	return nil
}

func (n *stubNotifier) IsSupported() bool {
	return false
}
