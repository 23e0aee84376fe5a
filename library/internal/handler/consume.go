package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/pkg/validate"
)

type loanCommander interface {
	LendBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error)
	ReturnBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error)
}

// Consumer applies lend and return commands read from the message queue.
type Consumer struct {
	commander loanCommander
	validator *validate.CustomValidator
	log       *zap.Logger
}

func NewConsumer(commander loanCommander, log *zap.Logger) *Consumer {
	return &Consumer{
		commander: commander,
		validator: validate.NewCustomValidator(),
		log:       log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.Handle(session.Context(), message.Value); err != nil {
				// business failures are final; the command is not redelivered
				consumer.log.Error("consumer.Handle", zap.Error(err), zap.String("value", string(message.Value)))
			} else {
				consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Handle decodes one command and applies it.
func (consumer *Consumer) Handle(ctx context.Context, data []byte) error {
	var cmd model.LoanCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return errors.Wrap(err, "decode command")
	}
	if err := consumer.validator.Validate(cmd); err != nil {
		return errors.Wrap(err, "validate command")
	}

	var at time.Time
	if cmd.Date != "" {
		d, err := model.ParseDate(cmd.Date)
		if err != nil {
			return err
		}
		at = d.Time
	}

	switch cmd.Type {
	case model.LoanCommandLend:
		_, err := consumer.commander.LendBook(ctx, cmd.UserID, cmd.BookID, cmd.BranchID, at)
		return err
	case model.LoanCommandReturn:
		if at.IsZero() {
			return errors.Wrap(errs.ErrInvalidDate, "return command without date")
		}
		_, err := consumer.commander.ReturnBook(ctx, cmd.UserID, cmd.BookID, cmd.BranchID, at)
		return err
	default:
		return errors.Errorf("unknown command type %q", cmd.Type)
	}
}
