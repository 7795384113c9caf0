package consumer

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/chucky-1/finance-bot/internal/model"
	"github.com/chucky-1/finance-bot/internal/service"
)

const (
	buttonIncome  = "➕ Income"
	buttonExpense = "➖ Expense"
	buttonBalance = "💰 Balance"
	buttonReports = "📊 Reports"
)

const (
	callbackReportPrefix = "report_"
	callbackBack         = "back_to_main"
)

var reportWindows = map[string]service.Window{
	"daily":   service.Day,
	"weekly":  service.Week,
	"monthly": service.Month,
	"yearly":  service.Year,
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonIncome),
			tgbotapi.NewKeyboardButton(buttonExpense),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonBalance),
			tgbotapi.NewKeyboardButton(buttonReports),
		),
	)
}

// categoryKeyboard lays out perRow buttons in each row
func categoryKeyboard(kind model.Kind, perRow int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range model.Categories(kind) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Name, categoryCallback(kind, c.Code)))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func incomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return categoryKeyboard(model.Income, 1)
}

func expenseKeyboard() tgbotapi.InlineKeyboardMarkup {
	return categoryKeyboard(model.Expense, 3)
}

func reportsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🗓️ Daily", callbackReportPrefix+"daily")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📆 Weekly", callbackReportPrefix+"weekly")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📈 Monthly", callbackReportPrefix+"monthly")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Yearly", callbackReportPrefix+"yearly")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Back", callbackBack)),
	)
}

func categoryCallback(kind model.Kind, code string) string {
	return kind.String() + "_" + code
}
