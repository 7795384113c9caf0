// Package consumer handles updates coming from telegram and the periodic refresh of the record store
package consumer

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/service"
)

const greeting = "Hi! I keep track of your income and expenses. Choose an action:"

func (h *Hub) start(_ context.Context, req *request) error {
	logrus.Infof("start command executed in chat %d", req.chatID)
	return h.sendMessage(req.chatID, greeting, mainMenuKeyboard())
}

func (h *Hub) chooseIncome(_ context.Context, req *request) error {
	return h.sendMessage(req.chatID, "Choose an income category:", incomeKeyboard())
}

func (h *Hub) chooseExpense(_ context.Context, req *request) error {
	return h.sendMessage(req.chatID, "Choose an expense category:", expenseKeyboard())
}

func (h *Hub) balance(_ context.Context, req *request) error {
	return h.sendMessage(req.chatID, h.reports.BalanceText(h.balancer.Balance()), nil)
}

func (h *Hub) chooseReport(_ context.Context, req *request) error {
	return h.sendMessage(req.chatID, "Choose a report:", reportsKeyboard())
}

func (h *Hub) report(_ context.Context, req *request) error {
	h.answerCallback(req)

	w, ok := reportWindows[req.payload]
	if !ok {
		return h.sendUnknown(req)
	}
	report := h.reports.Build(w, h.now())
	if err := h.sendReport(req.chatID, report); err != nil {
		return err
	}
	return h.sendMainMenu(req.chatID)
}

func (h *Hub) back(_ context.Context, req *request) error {
	h.answerCallback(req)
	return h.sendMainMenu(req.chatID)
}

func (h *Hub) unknown(_ context.Context, req *request) error {
	h.answerCallback(req)
	return h.sendUnknown(req)
}

func (h *Hub) sendUnknown(req *request) error {
	logrus.Debugf("hub consumer received unknown message in chat %d: %q", req.chatID, req.text)
	return h.sendMessage(req.chatID, "I don't understand. Please use the menu.", mainMenuKeyboard())
}

// sendReport sends the chart with the text as caption, or the text alone when there is no chart
func (h *Hub) sendReport(chatID int64, report *service.Report) error {
	if report.ChartPath == "" {
		return h.sendMessage(chatID, report.Text, nil)
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(report.ChartPath))
	photo.Caption = report.Text
	if _, err := h.bot.Send(photo); err != nil {
		return fmt.Errorf("sendReport, telegram bot couldn't send photo: %w", err)
	}
	return nil
}
