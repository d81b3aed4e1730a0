package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaNotifier_Notify(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "42", string(key))

		raw, err := msg.Value.Encode()
		require.NoError(t, err)
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, int64(42), event.RecipientID)
		assert.Equal(t, "Deal #5 completed", event.Message)
		assert.Equal(t, []string{"view_deal"}, event.Actions)
		return nil
	})

	n := NewKafkaNotifierWith(producer, "p2p.notifications", zerolog.Nop())
	err := n.Notify(context.Background(), 42, "Deal #5 completed", "view_deal")
	require.NoError(t, err)
	require.NoError(t, n.Close())
}

func TestKafkaNotifier_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	n := NewKafkaNotifierWith(producer, "p2p.notifications", zerolog.Nop())
	err := n.Notify(context.Background(), 7, "Deal #9 expired")
	assert.Error(t, err)
	require.NoError(t, n.Close())
}
