package ui

import (
	"fmt"

	"admin-dashboard/internal"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui/components"

	"github.com/rivo/tview"
)

const transactionsTitle = "Recent Transactions"

// TransactionsData formats transactions for the table. The title carries the
// row count and the completed total.
func TransactionsData(transactions []types.Transaction) types.TableData {
	rows := [][]string{
		{"User", "Amount", "Status", "Date"},
	}
	for _, tx := range transactions {
		rows = append(rows, []string{tx.User, tx.Amount, string(tx.Status), tx.Date})
	}

	completed := internal.TotalAmount(transactions, types.StatusCompleted)
	return types.TableData{
		Title: fmt.Sprintf("%s (%d) · %s completed", transactionsTitle, len(transactions), internal.FormatAmount(completed)),
		Rows:  rows,
	}
}

// PopulateTransactions fills table with the transactions, coloring statuses
func PopulateTransactions(table *tview.Table, transactions []types.Transaction) {
	components.PopulateTable(table, TransactionsData(transactions), func(_, col int, cell string) string {
		if col == 2 {
			return components.StatusColor(types.Status(cell))
		}
		return ""
	})
}
