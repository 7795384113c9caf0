package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/chart"
	"github.com/chucky-1/finance-bot/internal/config"
	"github.com/chucky-1/finance-bot/internal/consumer"
	"github.com/chucky-1/finance-bot/internal/producer"
	"github.com/chucky-1/finance-bot/internal/repository"
	"github.com/chucky-1/finance-bot/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid log level %s: %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	loc, err := cfg.Location()
	if err != nil {
		logrus.Fatal(err)
	}
	now := func() time.Time {
		return time.Now().In(loc)
	}

	// the oauth2 client keeps ctx for token refreshes, so it must live as long as the process
	var sheets repository.Sheets
	sheets, err = repository.NewGoogleSheets(ctx, cfg.Google.CredentialsFile, cfg.Google.SpreadsheetID, cfg.Google.SpreadsheetName)
	if err != nil {
		logrus.Errorf("couldn't open spreadsheet, entries will be kept in memory only: %v", err)
		sheets = repository.NewSheetsLocalStorage()
	}

	recorder := service.NewRecorder(sheets, service.SheetNames{
		Income:  cfg.Google.IncomeSheet,
		Expense: cfg.Google.ExpenseSheet,
		Summary: cfg.Google.SummarySheet,
	}, loc)
	reporter := service.NewReporter(recorder, chart.NewRenderer(cfg.ChartsDir), cfg.Currency)
	conversation := service.NewConversation(recorder)
	subscribers := repository.NewSubscribersLocalStorage()

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logrus.Fatal(err)
	}
	bot.Debug = cfg.Telegram.Debug
	logrus.Infof("authorized on account %s", bot.Self.UserName)

	refresher := consumer.NewRefresher(recorder, cfg.Schedule.RefreshInterval, now)
	refresher.Refresh(ctx)
	go refresher.Consume(ctx)

	producer.NewReporter(bot, refresher, reporter, subscribers, producer.Schedule{
		DailyHour:      cfg.Schedule.DailyHour,
		WeeklyDay:      cfg.Schedule.Weekday(),
		WeeklyHour:     cfg.Schedule.WeeklyHour,
		MonthlyHour:    cfg.Schedule.MonthlyHour,
		YearlyInterval: cfg.Schedule.YearlyInterval,
		Cooldown:       cfg.Schedule.PushCooldown,
	}, now).Produce(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.Timeout
	updates := bot.GetUpdatesChan(u)
	go consumer.NewHub(bot, updates, recorder, reporter, conversation, subscribers, now).Consume(ctx)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logrus.Infof("metrics server listening on %s", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	logrus.Info("shutting down")

	bot.StopReceivingUpdates()
	cancel()
	if metricsServer != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 2*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("metrics server couldn't shutdown: %v", err)
		}
		cancelShutdown()
	}
	<-time.After(2 * time.Second)
}
