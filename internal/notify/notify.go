package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
}

// NewNotifier creates a new notifier
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}

	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "tack")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SendDueReminder sends a task due reminder
func (n *Notifier) SendDueReminder(taskTitle string, dueIn time.Duration) error {
	var body string
	if dueIn <= 0 {
		body = "Task is now overdue!"
	} else if dueIn < time.Hour {
		body = "Task due in less than an hour"
	} else {
		body = "Task due soon"
	}

	urgency := UrgencyNormal
	if dueIn <= 0 {
		urgency = UrgencyCritical
	}

	return n.Send(Notification{
		Title:   taskTitle,
		Body:    body,
		Urgency: urgency,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}

// SendTimerRunning reminds about a work timer that has been running a while
func (n *Notifier) SendTimerRunning(taskTitle string, elapsed time.Duration) error {
	return n.Send(Notification{
		Title:   "Timer still running",
		Body:    fmt.Sprintf("%s (%s)", taskTitle, elapsed.Round(time.Minute)),
		Urgency: UrgencyLow,
		Timeout: 10 * time.Second,
		Icon:    "alarm-symbolic",
	})
}
