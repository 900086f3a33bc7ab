package transition

import (
	"strings"

	"docflow/internal/core/domain/model/kernel"
)

// Remediation reasons.
const (
	ReasonUpload = "upload"
	ReasonSign   = "sign"
)

// RemediationItem is the fix needed for one document slot.
type RemediationItem struct {
	Reason      string
	Message     string
	DocumentIDs []kernel.UUID
}

// Remediation is keyed by document slot.
type Remediation map[string]RemediationItem

// messageList joins messages with newlines, keeping the first occurrence only.
type messageList struct {
	seen  map[string]struct{}
	items []string
}

func (l *messageList) add(msg string) {
	if l.seen == nil {
		l.seen = map[string]struct{}{}
	}
	if _, ok := l.seen[msg]; ok {
		return
	}
	l.seen[msg] = struct{}{}
	l.items = append(l.items, msg)
}

func (l *messageList) empty() bool {
	return len(l.items) == 0
}

func (l *messageList) String() string {
	return strings.Join(l.items, "\n")
}

// SplitMessage undoes the newline join of a validation message.
func SplitMessage(msg string) []string {
	if msg == "" {
		return nil
	}
	return strings.Split(msg, "\n")
}
