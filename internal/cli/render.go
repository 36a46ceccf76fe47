package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/HannahRenyAlex/simple-banking-app/internal/helper"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func (m *Menu) renderAccounts(accounts []account.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "No accounts found. Please add a new account.")
		return
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOwner\tBalance")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Id, a.OwnerName, helper.FormatCurrency(a.Balance, m.symbol))
	}
	w.Flush()
}

func (m *Menu) renderHistory(records []transaction.Record) {
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No transactions yet.")
		return
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tTime\tType\tAmount\tBalance After")
	for _, rec := range records {
		kind, sign := "Deposit", "+"
		if rec.Kind == transaction.Withdraw {
			kind, sign = "Withdraw", "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\t%s\n",
			rec.Timestamp.Format("2006-01-02"),
			rec.Timestamp.Format("15:04:05"),
			kind,
			sign,
			helper.FormatCurrency(rec.Amount, m.symbol),
			helper.FormatCurrency(rec.ResultingBalance, m.symbol),
		)
	}
	w.Flush()
}
