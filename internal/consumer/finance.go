package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/model"
	"github.com/chucky-1/finance-bot/internal/service"
)

const storeTimeout = 10 * time.Second

func (h *Hub) chooseCategory(_ context.Context, req *request) error {
	h.answerCallback(req)

	category, ok := model.CategoryByCode(req.kind, req.payload)
	if !ok {
		return h.sendUnknown(req)
	}
	h.conversation.Choose(req.userID, req.kind, category.Name)
	logrus.Debugf("user %d chose %s category %s", req.userID, req.kind, category.Name)

	text := fmt.Sprintf("Category: %s\nEnter the amount and an optional comment, e.g. \"1500 salary\"", category.Name)
	return h.sendMessage(req.chatID, text, nil)
}

func (h *Hub) input(ctx context.Context, req *request) error {
	newCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	outcome, entry := h.conversation.Complete(newCtx, req.userID, req.text, h.now())
	cancel()

	var err error
	switch outcome {
	case service.OutcomeSaved:
		entriesCreated.WithLabelValues(entry.Kind.String()).Inc()
		logrus.Infof("user %d added %s: %s %s", req.userID, entry.Kind, entry.Category, entry.Amount)
		err = h.reply(req, savedText(entry))
	case service.OutcomeDuplicate:
		duplicatesRejected.Inc()
		err = h.reply(req, "This entry already exists.")
	case service.OutcomeInvalidAmount:
		err = h.reply(req, "Invalid amount format. Start the message with a number, e.g. \"1500 salary\".")
	case service.OutcomeInvalidEntry:
		err = h.reply(req, "This entry is invalid and was not saved. Please start again from the menu.")
	case service.OutcomeFailed:
		errorsTotal.WithLabelValues(string(actionInput)).Inc()
		err = h.reply(req, "Couldn't save the entry. Please try again later.")
	case service.OutcomeNoPending:
		return h.sendUnknown(req)
	}
	if err != nil {
		return err
	}
	return h.sendMainMenu(req.chatID)
}

func savedText(e model.Entry) string {
	comment := e.Comment
	if comment == "" {
		comment = "-"
	}
	return fmt.Sprintf("Entry saved:\nDate: %s\nType: %s\nCategory: %s\nAmount: %s\nComment: %s",
		e.Date.Format(model.DateLayout), kindName(e.Kind), e.Category, e.Amount, comment)
}

func kindName(k model.Kind) string {
	if k == model.Income {
		return "Income"
	}
	return "Expense"
}
