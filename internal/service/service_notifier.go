// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/models"
)

// DefaultNotificationTimeout applies when the configured timeout is not
// positive.
const DefaultNotificationTimeout = 6 * time.Second

type notifier struct {
	timeout  time.Duration
	onChange func(models.Notification)

	mu    sync.Mutex
	state models.Notification
	timer *time.Timer
	// generation invalidates timers that fire after the toast they belong to
	// was replaced or closed.
	generation uint64
}

// NewNotifier creates a closed toast. onChange, if not nil, is called with
// the new state after every change, outside the notifier's lock.
func NewNotifier(cfg config.Notifications, onChange func(models.Notification)) Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultNotificationTimeout
	}

	return &notifier{
		timeout:  timeout,
		onChange: onChange,
		state:    models.Notification{Severity: models.SeveritySuccess},
	}
}

// Show implements [Notifier].
func (n *notifier) Show(severity models.Severity, message string) {
	if severity == "" {
		severity = models.SeveritySuccess
	}

	n.mu.Lock()
	n.stopTimerLocked()
	n.generation++
	gen := n.generation
	n.state = models.Notification{Open: true, Severity: severity, Message: message}
	n.timer = time.AfterFunc(n.timeout, func() { n.expire(gen) })
	state := n.state
	n.mu.Unlock()

	n.notify(state)
}

// Close implements [Notifier].
func (n *notifier) Close() {
	n.mu.Lock()
	if !n.state.Open {
		n.mu.Unlock()
		return
	}
	n.stopTimerLocked()
	n.generation++
	n.state.Open = false
	state := n.state
	n.mu.Unlock()

	n.notify(state)
}

// Current implements [Notifier].
func (n *notifier) Current() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *notifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.generation || !n.state.Open {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	n.state.Open = false
	state := n.state
	n.mu.Unlock()

	n.notify(state)
}

func (n *notifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *notifier) notify(state models.Notification) {
	if n.onChange != nil {
		n.onChange(state)
	}
}
