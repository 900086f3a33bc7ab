// Package pgnotify delivers notifications as PostgreSQL NOTIFY messages.
// Listeners (the web front end, mail workers) subscribe to the channel and fan
// the payload out to the recipient's users.
package pgnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/notification"
	"docflow/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultChannel is used when no channel is configured.
const DefaultChannel = "package_status_changed"

// maxPayload is the NOTIFY payload limit of a default PostgreSQL build.
const maxPayload = 8000

// Payload is the JSON document sent on the channel.
type Payload struct {
	NotificationID string    `json:"notification_id"`
	RecipientID    string    `json:"recipient_id"`
	RecipientRole  string    `json:"recipient_role"`
	PackageID      string    `json:"package_id"`
	PackageType    string    `json:"package_type"`
	Period         string    `json:"period"`
	Status         int       `json:"status"`
	StatusName     string    `json:"status_name"`
	StatusLabel    string    `json:"status_label"`
	ForOperator    bool      `json:"for_operator"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPayload renders an outgoing notification.
func NewPayload(n notification.Outgoing) Payload {
	return Payload{
		NotificationID: n.ID.String(),
		RecipientID:    n.Recipient.ID.String(),
		RecipientRole:  n.Recipient.Role.String(),
		PackageID:      n.Message.PackageID.String(),
		PackageType:    n.Message.PackageType.String(),
		Period:         n.Message.Period,
		Status:         int(n.Message.Status),
		StatusName:     n.Message.Status.Name(),
		StatusLabel:    n.Message.Status.Label(),
		ForOperator:    n.Message.ForOperator,
		CreatedAt:      n.CreatedAt,
	}
}

// Transport implements ports.NotificationTransport.
type Transport struct {
	db      *gorm.DB
	channel string
}

// NewTransport creates a transport publishing on channel, or on
// DefaultChannel when channel is empty.
func NewTransport(db *gorm.DB, channel string) (*Transport, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &Transport{db: db, channel: channel}, nil
}

// Channel returns the NOTIFY channel name.
func (t *Transport) Channel() string {
	return t.channel
}

// Deliver publishes n as a JSON payload on the channel with NOTIFY.
func (t *Transport) Deliver(ctx context.Context, n notification.Outgoing) error {
	payload, err := json.Marshal(NewPayload(n))
	if err != nil {
		return fmt.Errorf("encode notification %s: %w", n.ID, err)
	}
	if len(payload) >= maxPayload {
		return errs.NewValueIsInvalidErrorWithCause("payload",
			fmt.Errorf("notification %s is %d bytes", n.ID, len(payload)))
	}

	// NOTIFY does not accept bind parameters.
	stmt := "NOTIFY " + pq.QuoteIdentifier(t.channel) + ", " + pq.QuoteLiteral(string(payload))
	return t.db.WithContext(ctx).Exec(stmt).Error
}
