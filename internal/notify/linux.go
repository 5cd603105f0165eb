//go:build linux

// Linux notifications via notify-send.
package notify

import (
	"fmt"
	"os/exec"
)

type linuxNotifier struct{}

func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

func (n *linuxNotifier) Send(title, message string) error {
	return n.display(title, message, false)
}

// SendWithSound relies on the notification daemon honoring the urgency
// hint; there is no portable sound flag for notify-send.
func (n *linuxNotifier) SendWithSound(title, message string) error {
	return n.display(title, message, true)
}

// IsSupported reports whether notify-send is on PATH.
func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

func (n *linuxNotifier) display(title, message string, sound bool) error {
	args := []string{
		"--app-name=pushover-notifier",
		title,
		message,
	}
	if sound {
		args = append([]string{"--urgency=normal"}, args...)
	}

	if err := exec.Command("notify-send", args...).Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}
