package pgnotify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"docflow/internal/adapters/out/pgnotify"
	"docflow/internal/adapters/out/postgres/pgtest"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
)

type TransportIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (suite *TransportIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *TransportIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *TransportIntegrationTestSuite) TestDeliver_ListenerReceivesPayload() {
	ctx := context.Background()
	const channel = "docflow test channel"

	listener := pq.NewListener(suite.database.DSN, 10*time.Millisecond, time.Second, nil)
	defer func() { _ = listener.Close() }()
	suite.Require().NoError(listener.Listen(channel))

	transport, err := pgnotify.NewTransport(suite.database.DB, channel)
	suite.Require().NoError(err)

	n := notification.Outgoing{
		ID:        kernel.NewUUID(),
		Recipient: notification.Recipient{ID: kernel.NewUUID(), Role: actor.Counterparty},
		Message: notification.StatusChanged{
			PackageID:   kernel.NewUUID(),
			PackageType: docpackage.Act,
			Period:      "2024-03 'Q1'",
			Status:      status.Approval,
		},
		CreatedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}

	// Act
	suite.Require().NoError(transport.Deliver(ctx, n))

	// Assert
	select {
	case msg := <-listener.Notify:
		suite.Require().NotNil(msg)
		suite.Equal(channel, msg.Channel)

		var payload pgnotify.Payload
		suite.Require().NoError(json.Unmarshal([]byte(msg.Extra), &payload))
		suite.Equal(pgnotify.NewPayload(n), payload)
		suite.Equal("APPROVAL", payload.StatusName)
		suite.Equal("COUNTERPARTY", payload.RecipientRole)
	case <-time.After(5 * time.Second):
		suite.Fail("notification was not received")
	}
}

func (suite *TransportIntegrationTestSuite) TestNewTransport_DefaultChannel() {
	transport, err := pgnotify.NewTransport(suite.database.DB, "")

	suite.Require().NoError(err)
	suite.Equal(pgnotify.DefaultChannel, transport.Channel())
}

func TestTransportIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransportIntegrationTestSuite))
}
