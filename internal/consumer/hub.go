package consumer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/model"
	"github.com/chucky-1/finance-bot/internal/repository"
	"github.com/chucky-1/finance-bot/internal/service"
)

// action tags every inbound update. Routing an update and handling it are separate steps
type action string

const (
	actionStart         action = "start"
	actionChooseIncome  action = "choose_income"
	actionChooseExpense action = "choose_expense"
	actionBalance       action = "balance"
	actionReports       action = "reports"
	actionCategory      action = "category"
	actionReport        action = "report"
	actionBack          action = "back"
	actionInput         action = "input"
	actionUnknown       action = "unknown"
)

var actions = []action{
	actionStart, actionChooseIncome, actionChooseExpense, actionBalance, actionReports,
	actionCategory, actionReport, actionBack, actionInput, actionUnknown,
}

var menuActions = map[string]action{
	buttonIncome:  actionChooseIncome,
	buttonExpense: actionChooseExpense,
	buttonBalance: actionBalance,
	buttonReports: actionReports,
}

// Sender is the part of tgbotapi.BotAPI the consumers need
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Balancer interface {
	Balance() decimal.Decimal
}

type ReportBuilder interface {
	Build(w service.Window, now time.Time) *service.Report
	BalanceText(balance decimal.Decimal) string
}

type request struct {
	chatID     int64
	userID     int64
	messageID  int
	text       string
	kind       model.Kind
	payload    string
	callbackID string
}

type handler func(ctx context.Context, req *request) error

// Hub receives updates from telegram and dispatches them by action
type Hub struct {
	bot          Sender
	updatesChan  tgbotapi.UpdatesChannel
	balancer     Balancer
	reports      ReportBuilder
	conversation *service.Conversation
	subscribers  repository.Subscribers
	now          func() time.Time
	handlers     map[action]handler
}

func NewHub(bot Sender, updatesChan tgbotapi.UpdatesChannel, balancer Balancer, reports ReportBuilder,
	conversation *service.Conversation, subscribers repository.Subscribers, now func() time.Time) *Hub {
	h := &Hub{
		bot:          bot,
		updatesChan:  updatesChan,
		balancer:     balancer,
		reports:      reports,
		conversation: conversation,
		subscribers:  subscribers,
		now:          now,
	}
	h.handlers = map[action]handler{
		actionStart:         h.start,
		actionChooseIncome:  h.chooseIncome,
		actionChooseExpense: h.chooseExpense,
		actionBalance:       h.balance,
		actionReports:       h.chooseReport,
		actionCategory:      h.chooseCategory,
		actionReport:        h.report,
		actionBack:          h.back,
		actionInput:         h.input,
		actionUnknown:       h.unknown,
	}
	return h
}

func (h *Hub) Consume(ctx context.Context) {
	logrus.Info("hub consumer started")
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("hub consumer stopped: %v", ctx.Err())
			return
		case update, ok := <-h.updatesChan:
			if !ok {
				logrus.Info("hub consumer stopped: updates channel closed")
				return
			}
			h.handle(ctx, update)
		}
	}
}

func (h *Hub) handle(ctx context.Context, update tgbotapi.Update) {
	act, req := h.route(update)
	if req == nil {
		return
	}
	actionsProcessed.WithLabelValues(string(act)).Inc()

	if err := h.subscribers.Add(ctx, req.chatID); err != nil {
		logrus.Errorf("hub consumer couldn't register chat %d: %v", req.chatID, err)
	}

	if err := h.handlers[act](ctx, req); err != nil {
		errorsTotal.WithLabelValues(string(act)).Inc()
		logrus.Errorf("hub consumer %s error: %v", act, err)
	}
}

// route maps an update to its action. Menu buttons win over a pending amount input
func (h *Hub) route(update tgbotapi.Update) (action, *request) {
	if cb := update.CallbackQuery; cb != nil {
		req := &request{
			userID:     cb.From.ID,
			chatID:     cb.From.ID,
			text:       cb.Data,
			callbackID: cb.ID,
		}
		if cb.Message != nil {
			req.chatID = cb.Message.Chat.ID
		}
		switch {
		case cb.Data == callbackBack:
			return actionBack, req
		case strings.HasPrefix(cb.Data, callbackReportPrefix):
			req.payload = strings.TrimPrefix(cb.Data, callbackReportPrefix)
			return actionReport, req
		}
		for _, kind := range []model.Kind{model.Income, model.Expense} {
			if code, ok := strings.CutPrefix(cb.Data, kind.String()+"_"); ok {
				req.kind, req.payload = kind, code
				return actionCategory, req
			}
		}
		return actionUnknown, req
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return "", nil
	}
	req := &request{
		chatID:    msg.Chat.ID,
		userID:    msg.From.ID,
		messageID: msg.MessageID,
		text:      msg.Text,
	}
	if msg.IsCommand() {
		if msg.Command() == "start" {
			return actionStart, req
		}
		return actionUnknown, req
	}
	if act, ok := menuActions[strings.TrimSpace(msg.Text)]; ok {
		return act, req
	}
	if _, ok := h.conversation.Pending(req.userID); ok {
		return actionInput, req
	}
	return actionUnknown, req
}

func (h *Hub) sendMessage(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("sendMessage, telegram bot couldn't send message: %w", err)
	}
	return nil
}

func (h *Hub) reply(req *request, text string) error {
	msg := tgbotapi.NewMessage(req.chatID, text)
	msg.ReplyToMessageID = req.messageID
	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("reply, telegram bot couldn't send message: %w", err)
	}
	return nil
}

func (h *Hub) answerCallback(req *request) {
	if req.callbackID == "" {
		return
	}
	if _, err := h.bot.Request(tgbotapi.NewCallback(req.callbackID, "")); err != nil {
		logrus.Errorf("hub consumer couldn't answer callback %s: %v", req.callbackID, err)
	}
}

func (h *Hub) sendMainMenu(chatID int64) error {
	return h.sendMessage(chatID, "Main menu:", mainMenuKeyboard())
}
