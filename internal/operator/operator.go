package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// writerSource opens the storage transaction an action runs in.
type writerSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage   writerSource
	publisher events.Publisher
	logger    *logrus.Logger
	queue     chan ActionItem
}

func NewOperator(s writerSource, publisher events.Publisher, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		storage:   s,
		publisher: publisher,
		logger:    logger,
		queue:     queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.processItem.Rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
	o.publish(item)
}

// publish sends the action's events once the write is durable. A broker
// failure never fails the write.
func (o *Operator) publish(item ActionItem) {
	for _, event := range item.action.Events() {
		if err := o.publisher.Publish(context.WithoutCancel(item.ctx), event); err != nil {
			o.logger.WithError(err).WithFields(logrus.Fields{
				"routingKey": event.RoutingKey(),
				"id":         event.ID.String(),
			}).Warn("Operator.publish.Error")
		}
	}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
