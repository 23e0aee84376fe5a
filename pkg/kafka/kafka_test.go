package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/library-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/library-lending/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	type msg struct {
		LoanID string `json:"loanId"`
	}

	t.Run("ok", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got msg
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			if got.LoanID != "L1" {
				return errors.Errorf("unexpected loanId %q", got.LoanID)
			}
			return nil
		})
		p := kafka.NewPublisher(producer, "library.loans", circuit_breaker.New(10, time.Second, 0.5, 1))

		require.NoError(t, p.Publish(context.Background(), "U1", msg{LoanID: "L1"}))
		require.NoError(t, p.Close())
	})

	t.Run("err. broker", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		p := kafka.NewPublisher(producer, "library.loans", circuit_breaker.New(10, time.Second, 0.5, 1))

		err := p.Publish(context.Background(), "U1", msg{LoanID: "L1"})
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, p.Close())
	})

	t.Run("err. breaker open", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		p := kafka.NewPublisher(producer, "library.loans", circuit_breaker.New(1, time.Minute, 0.5, 1))

		require.Error(t, p.Publish(context.Background(), "U1", msg{LoanID: "L1"}))
		// the producer must not be called again while the breaker is open
		require.ErrorIs(t, p.Publish(context.Background(), "U1", msg{LoanID: "L2"}), circuit_breaker.ErrOpenCB)
		require.NoError(t, p.Close())
	})
}

func TestConfig_Enabled(t *testing.T) {
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}
