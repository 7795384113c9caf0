// Package producer pushes scheduled reports to every known chat
package producer

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/repository"
	"github.com/chucky-1/finance-bot/internal/service"
)

const refreshTimeout = time.Minute

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Refresher interface {
	Refresh(ctx context.Context)
}

type ReportBuilder interface {
	Build(w service.Window, now time.Time) *service.Report
}

// Schedule holds the wall-clock targets of the pushes
type Schedule struct {
	DailyHour      int
	WeeklyDay      time.Weekday
	WeeklyHour     int
	MonthlyHour    int
	YearlyInterval time.Duration
	// Cooldown is slept after a daily, weekly or monthly push so the loop doesn't fire twice in the same hour
	Cooldown time.Duration
}

type Reporter struct {
	bot         Sender
	refresher   Refresher
	reports     ReportBuilder
	subscribers repository.Subscribers
	schedule    Schedule
	now         func() time.Time
}

func NewReporter(bot Sender, refresher Refresher, reports ReportBuilder, subscribers repository.Subscribers,
	schedule Schedule, now func() time.Time) *Reporter {
	return &Reporter{
		bot:         bot,
		refresher:   refresher,
		reports:     reports,
		subscribers: subscribers,
		schedule:    schedule,
		now:         now,
	}
}

func (r *Reporter) Produce(ctx context.Context) {
	logrus.Info("reporter producer started produce")
	start := r.now()

	go r.run(ctx, service.Day, r.schedule.Cooldown, func(now time.Time) time.Time {
		return NextDaily(now, r.schedule.DailyHour)
	})
	go r.run(ctx, service.Week, r.schedule.Cooldown, func(now time.Time) time.Time {
		return NextWeekly(now, r.schedule.WeeklyDay, r.schedule.WeeklyHour)
	})
	go r.run(ctx, service.Month, r.schedule.Cooldown, func(now time.Time) time.Time {
		return NextMonthly(now, r.schedule.MonthlyHour)
	})
	go r.run(ctx, service.Year, 0, func(now time.Time) time.Time {
		return NextInterval(start, now, r.schedule.YearlyInterval)
	})
}

// run sleeps until next(now), pushes the report of the window and starts over
func (r *Reporter) run(ctx context.Context, w service.Window, cooldown time.Duration, next func(now time.Time) time.Time) {
	logrus.Infof("reporter producer started %s loop", w)
	for {
		now := r.now()
		at := next(now)
		logrus.Debugf("reporter producer: next %s push at %v", w, at)

		if !sleep(ctx, at.Sub(now)) {
			logrus.Infof("reporter producer stopped %s loop: %v", w, ctx.Err())
			return
		}
		r.cycle(ctx, w)

		if cooldown > 0 && !sleep(ctx, cooldown) {
			logrus.Infof("reporter producer stopped %s loop: %v", w, ctx.Err())
			return
		}
	}
}

// cycle refreshes the store and pushes one report to every subscriber. It never panics
func (r *Reporter) cycle(ctx context.Context, w service.Window) {
	defer func() {
		if p := recover(); p != nil {
			logrus.Errorf("reporter producer recovered in %s cycle: %v", w, p)
		}
	}()

	newCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	r.refresher.Refresh(newCtx)
	cancel()

	report := r.reports.Build(w, r.now())
	chats, err := r.subscribers.All(ctx)
	if err != nil {
		logrus.Errorf("reporter producer couldn't get subscribers: %v", err)
		return
	}
	for _, chatID := range chats {
		if err = r.send(chatID, report); err != nil {
			pushesTotal.WithLabelValues(w.String(), "failed").Inc()
			logrus.Error(err)
			continue
		}
		pushesTotal.WithLabelValues(w.String(), "sent").Inc()
	}
	logrus.Infof("reporter producer pushed %s report to %d chats", w, len(chats))
}

func (r *Reporter) send(chatID int64, report *service.Report) error {
	var c tgbotapi.Chattable
	if report.ChartPath != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(report.ChartPath))
		photo.Caption = report.Text
		c = photo
	} else {
		c = tgbotapi.NewMessage(chatID, report.Text)
	}
	if _, err := r.bot.Send(c); err != nil {
		return fmt.Errorf("reporter producer couldn't send %s report to chat %d: %w", report.Window, chatID, err)
	}
	return nil
}

// sleep waits d or until ctx is done. It reports whether the full duration passed
func sleep(ctx context.Context, d time.Duration) bool {
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// NextDaily is today at hour:00, or tomorrow if that moment has passed
func NextDaily(now time.Time, hour int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// NextWeekly is the next weekday at hour:00. On the weekday itself past the hour it is a week ahead
func NextWeekly(now time.Time, weekday time.Weekday, hour int) time.Time {
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	target := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, hour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 7)
	}
	return target
}

// NextMonthly is today at hour:00 when it is the 1st and earlier than hour, otherwise the 1st of next month
func NextMonthly(now time.Time, hour int) time.Time {
	if now.Day() == 1 && now.Hour() < hour {
		return time.Date(now.Year(), now.Month(), 1, hour, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month()+1, 1, hour, 0, 0, 0, now.Location())
}

// NextInterval is the first start+k*interval strictly after now
func NextInterval(start, now time.Time, interval time.Duration) time.Time {
	if interval <= 0 || now.Before(start) {
		return start.Add(interval)
	}
	k := now.Sub(start)/interval + 1
	return start.Add(k * interval)
}
