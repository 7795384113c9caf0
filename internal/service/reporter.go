package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-bot/internal/model"
)

// Renderer draws a grouped bar chart and returns the image path
type Renderer interface {
	Render(title string, breakdown model.Breakdown) (string, error)
}

type EntrySource interface {
	Entries() []model.Entry
}

type Report struct {
	Window    Window
	Title     string
	Text      string
	ChartPath string
	Totals    model.Totals
}

type Reporter struct {
	source   EntrySource
	renderer Renderer
	currency string
}

func NewReporter(source EntrySource, renderer Renderer, currency string) *Reporter {
	return &Reporter{
		source:   source,
		renderer: renderer,
		currency: currency,
	}
}

// Build makes the report of the window. Day reports are itemized text only, other windows
// get aggregate text and a chart. A chart failure leaves ChartPath empty
func (r *Reporter) Build(w Window, now time.Time) *Report {
	entries := Filter(r.source.Entries(), now, w)
	report := &Report{
		Window: w,
		Title:  Title(w, now),
		Totals: Sum(entries),
	}

	if w == Day {
		report.Text = r.dailySummary(report.Title, entries, report.Totals)
		return report
	}

	report.Text = r.periodSummary(w, report.Title, report.Totals)
	path, err := r.renderer.Render(report.Title, ByCategory(entries))
	if err != nil {
		logrus.Errorf("reporter couldn't render %s chart: %v", w, err)
		return report
	}
	report.ChartPath = path
	return report
}

func (r *Reporter) BalanceText(balance decimal.Decimal) string {
	return fmt.Sprintf("Your current balance: %s", r.signed(balance))
}

// Title names the report of the window at now
func Title(w Window, now time.Time) string {
	switch w {
	case Day:
		return fmt.Sprintf("Report for %s", now.Format("02 January 2006"))
	case Week:
		return fmt.Sprintf("Weekly report (%s–%s)", now.AddDate(0, 0, -7).Format("02.01"), now.Format("02.01"))
	case Month:
		return fmt.Sprintf("Monthly report for %s", now.Format("January 2006"))
	case Year:
		return fmt.Sprintf("Yearly report for %d", now.Year())
	}
	return "Report"
}

func (r *Reporter) dailySummary(title string, entries []model.Entry, totals model.Totals) string {
	var incomes, expenses []string
	for _, e := range entries {
		line := strings.TrimSpace(fmt.Sprintf("- %s: %s %s", e.Category, r.money(e.Amount), e.Comment))
		switch e.Kind {
		case model.Income:
			incomes = append(incomes, line)
		case model.Expense:
			expenses = append(expenses, line)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗓️ %s:\n\n", title))
	sb.WriteString("✅ Income:\n" + lines(incomes) + "\n\n")
	sb.WriteString("❌ Expenses:\n" + lines(expenses) + "\n\n")
	sb.WriteString(fmt.Sprintf("📌 Total:\nIncome: %s\nExpenses: %s\nBalance for the day: %s",
		r.money(totals.Income), r.money(totals.Expense), r.signed(totals.Balance)))
	return sb.String()
}

func (r *Reporter) periodSummary(w Window, title string, totals model.Totals) string {
	icon, balanceIcon := "📊", "💵"
	switch w {
	case Week:
		icon, balanceIcon = "📆", "💰"
	case Month:
		icon, balanceIcon = "📈", "💳"
	}
	return fmt.Sprintf("%s %s:\n\n✅ Income: %s\n❌ Expenses: %s\n%s Balance: %s",
		icon, title, r.money(totals.Income), r.money(totals.Expense), balanceIcon, r.signed(totals.Balance))
}

func lines(items []string) string {
	if len(items) == 0 {
		return "No entries"
	}
	return strings.Join(items, "\n")
}

func (r *Reporter) money(d decimal.Decimal) string {
	if r.currency == "" {
		return d.String()
	}
	return d.String() + " " + r.currency
}

// signed prefixes non-negative amounts with a plus
func (r *Reporter) signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return r.money(d)
	}
	return "+" + r.money(d)
}
