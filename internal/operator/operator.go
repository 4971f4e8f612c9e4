package operator

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/backup"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Operator is the worker that processes items from the queue. Every action
// runs inside a single transaction, and the last-database-update stamp is
// written in that same transaction. After a successful commit the operator
// triggers an automatic backup without waiting for it.
type Operator struct {
	storage *storage.Storage
	backup  *backup.Service
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, b *backup.Service, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		backup:  b,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, &writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Settings.SetLastDatabaseUpdate(item.ctx, time.Now()); err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	if o.backup != nil {
		o.backup.Trigger(backup.ModeAutomatic)
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
