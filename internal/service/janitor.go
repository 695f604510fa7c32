package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"safesign/internal/model"
	"safesign/internal/repository"
)

// Janitor sweeps active documents past their expiry into the expired
// state on a fixed interval, decoupled from request handling.
type Janitor struct {
	repo     repository.DocumentRepository
	locks    *docLocker
	log      *zap.Logger
	metrics  *Metrics
	interval time.Duration
}

// NewJanitor wires an expiry sweeper against the same repository and
// lock table the service mutates through.
func NewJanitor(svc DocumentService, repo repository.DocumentRepository, log *zap.Logger, metrics *Metrics, interval time.Duration) *Janitor {
	j := &Janitor{
		repo:     repo,
		log:      log,
		metrics:  metrics,
		interval: interval,
	}
	if impl, ok := svc.(*documentService); ok {
		j.locks = impl.locks
	} else {
		j.locks = newDocLocker()
	}
	return j
}

// Run sweeps until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := j.Sweep(ctx); err != nil {
				j.log.Error("expiry sweep failed", zap.Error(err))
			} else if n > 0 {
				j.log.Info("documents expired", zap.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Sweep expires every active document whose expiresAt has passed and
// returns how many were transitioned.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	page, err := j.repo.List(ctx, repository.PageQuery{Status: model.StatusActive})
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0
	for i := range page.Items {
		doc := &page.Items[i]
		if doc.ExpiresAt == nil || doc.ExpiresAt.After(now) {
			continue
		}
		if err := j.expire(ctx, doc.ID, now); err != nil {
			j.log.Error("expire document failed", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		expired++
	}
	return expired, nil
}

// expire re-reads the document under its lock so a concurrent signature
// that just completed it is never overwritten.
func (j *Janitor) expire(ctx context.Context, id string, now time.Time) error {
	j.locks.Lock(id)
	defer j.locks.Unlock(id)

	doc, err := j.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.Status != model.StatusActive || doc.ExpiresAt == nil || doc.ExpiresAt.After(now) {
		return nil
	}

	doc.Status = model.StatusExpired
	doc.ShareLinkActive = false
	doc.UpdatedAt = now
	if _, err := j.repo.Save(ctx, doc); err != nil {
		return err
	}
	j.metrics.DocumentExpired()
	return nil
}
