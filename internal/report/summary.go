// Package report derives the dashboard, budget, and report figures from
// the fetched transaction list. Everything here is computed client-side
// over the read-through copy; the server is never asked for aggregates.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

// Summary holds month-to-date totals for the dashboard cards.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MonthToDate sums income and expense for the month containing now.
func MonthToDate(txs []model.Transaction, now time.Time) Summary {
	s := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, tx := range txs {
		d := tx.TransactionDate
		if d.Year() != now.Year() || d.Month() != now.Month() {
			continue
		}
		switch tx.Type {
		case model.TransactionTypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case model.TransactionTypeExpense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}

	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// BudgetUsage returns spent/budget as a percentage, or zero when no
// budget is configured.
func (s Summary) BudgetUsage(budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return s.Expense.Div(budget).Mul(decimal.NewFromInt(100)).Round(1)
}

// CategoryTotal is the spend attributed to one category.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// ExpenseByCategory sums expenses per category for the month containing
// now, largest first.
func ExpenseByCategory(txs []model.Transaction, now time.Time) []CategoryTotal {
	byName := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != model.TransactionTypeExpense {
			continue
		}
		d := tx.TransactionDate
		if d.Year() != now.Year() || d.Month() != now.Month() {
			continue
		}
		byName[tx.Category.Name] = byName[tx.Category.Name].Add(tx.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byName))
	for name, total := range byName {
		totals = append(totals, CategoryTotal{Name: name, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	return totals
}

// MonthTotal is the income/expense pair for one calendar month.
type MonthTotal struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Monthly aggregates by calendar month, most recent first.
func Monthly(txs []model.Transaction) []MonthTotal {
	byMonth := make(map[string]*MonthTotal)
	for _, tx := range txs {
		key := tx.TransactionDate.Format("2006-01")
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{
				Month:   key,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byMonth[key] = mt
		}
		switch tx.Type {
		case model.TransactionTypeIncome:
			mt.Income = mt.Income.Add(tx.Amount)
		case model.TransactionTypeExpense:
			mt.Expense = mt.Expense.Add(tx.Amount)
		}
	}

	totals := make([]MonthTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		totals = append(totals, *mt)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month > totals[j].Month
	})

	return totals
}
