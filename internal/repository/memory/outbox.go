package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

func (r *OutboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

func (r *OutboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make([]*model.OutboxEvent, 0)
	for _, event := range r.events {
		if event.Status != model.OutboxStatusPending {
			continue
		}
		e := event
		pending = append(pending, &e)
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *OutboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return apperrors.NotFound("outbox event", nil)
	}
	now := time.Now().UTC()
	event.Status = model.OutboxStatusProcessed
	event.ProcessedAt = &now
	r.events[id] = event
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return apperrors.NotFound("outbox event", nil)
	}
	event.Status = model.OutboxStatusFailed
	event.ErrorMessage = &errorMessage
	event.RetryCount++
	r.events[id] = event
	return nil
}
