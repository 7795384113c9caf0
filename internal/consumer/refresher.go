package consumer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Store interface {
	Refresh(ctx context.Context)
	WriteSummary(ctx context.Context, now time.Time) error
}

// Refresher reloads the record store from the sheets and rewrites the summary sheet every interval
type Refresher struct {
	store    Store
	interval time.Duration
	now      func() time.Time
}

func NewRefresher(store Store, interval time.Duration, now func() time.Time) *Refresher {
	return &Refresher{
		store:    store,
		interval: interval,
		now:      now,
	}
}

// Consume refreshes once per interval until ctx is done. The first refresh happens after one interval
func (r *Refresher) Consume(ctx context.Context) {
	logrus.Info("refresher consumer started")

	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("refresher consumer stopped: %v", ctx.Err())
			return
		case <-t.C:
			r.Refresh(ctx)
		}
	}
}

func (r *Refresher) Refresh(ctx context.Context) {
	newCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	r.store.Refresh(newCtx)
	if err := r.store.WriteSummary(newCtx, r.now()); err != nil {
		refreshesTotal.WithLabelValues("summary_failed").Inc()
		logrus.Errorf("refresher consumer couldn't WriteSummary: %v", err)
		return
	}
	refreshesTotal.WithLabelValues("ok").Inc()
	logrus.Debugf("refresher consumer successfully refreshed in %v", r.now())
}
