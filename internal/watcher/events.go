package watcher

import (
	"log"
	"os"
)

// Notification is what the watcher delivers downstream. A change
// notification carries the ordered batch of changed paths; a watcher-error
// notification carries a diagnostic message instead.
type Notification struct {
	Event   string
	Paths   []string
	Message string
}

// Sink receives watcher notifications. Implementations must not block: the
// session loop calls Emit inline.
type Sink interface {
	Emit(n Notification)
}

// ChannelSink bridges notifications to a buffered single-consumer channel.
// When the consumer lags and the buffer fills, notifications are dropped
// with a log line rather than stalling the watch session.
type ChannelSink struct {
	ch     chan Notification
	logger *log.Logger
}

func NewChannelSink(size int, logger *log.Logger) *ChannelSink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	if logger == nil {
		logger = log.New(os.Stdout, "[Watcher] ", log.LstdFlags)
	}
	return &ChannelSink{
		ch:     make(chan Notification, size),
		logger: logger,
	}
}

func (s *ChannelSink) Emit(n Notification) {
	select {
	case s.ch <- n:
	default:
		s.logger.Printf("Warning: notification buffer full, dropping %s", n.Event)
	}
}

// Notifications returns the consumer side of the bridge.
func (s *ChannelSink) Notifications() <-chan Notification {
	return s.ch
}
