// Package cli implements the interactive text menu. It prompts on standard
// input, prints results on standard output and keeps looping on domain
// errors; only file access failures abort the session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HannahRenyAlex/simple-banking-app/internal/helper"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/store"
)

type Menu struct {
	ledger *ledger.Ledger
	in     *bufio.Reader
	out    io.Writer
	symbol string
}

func NewMenu(l *ledger.Ledger, in io.Reader, out io.Writer, currencySymbol string) *Menu {
	return &Menu{ledger: l, in: bufio.NewReader(in), out: out, symbol: currencySymbol}
}

// Run drives the menu until the user exits or input ends. Domain errors are
// printed and the loop continues; store.ErrFileAccess is returned to the
// caller since no further operation can persist safely.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		header.Fprintln(m.out, "=== Simple Banking App ===")
		fmt.Fprintln(m.out, "1. Create Account")
		fmt.Fprintln(m.out, "2. Deposit")
		fmt.Fprintln(m.out, "3. Withdraw")
		fmt.Fprintln(m.out, "4. Check Balance")
		fmt.Fprintln(m.out, "5. View Transactions")
		fmt.Fprintln(m.out, "6. List Accounts")
		fmt.Fprintln(m.out, "7. Exit")

		choice, err := m.prompt("Select an option: ")
		if err != nil {
			// Input exhausted, treat as a normal exit
			return nil
		}

		var opErr error
		switch choice {
		case "1":
			opErr = m.createAccount()
		case "2":
			opErr = m.deposit()
		case "3":
			opErr = m.withdraw()
		case "4":
			opErr = m.checkBalance()
		case "5":
			opErr = m.viewTransactions()
		case "6":
			opErr = m.listAccounts()
		case "7":
			fmt.Fprintln(m.out, "Exiting application. Goodbye!")
			return nil
		default:
			failure.Fprintln(m.out, "Invalid choice. Please try again.")
		}

		if opErr != nil {
			// Input ending mid-operation is a normal exit, not an error
			if errors.Is(opErr, io.EOF) {
				return nil
			}
			if errors.Is(opErr, store.ErrFileAccess) {
				return opErr
			}
			failure.Fprintln(m.out, userMessage(opErr))
		}
	}
}

func (m *Menu) createAccount() error {
	header.Fprintln(m.out, "\n=== Create Account ===")
	ownerName, err := m.prompt("Enter owner name: ")
	if err != nil {
		return err
	}

	input := account.CreateAccountSchema{OwnerName: ownerName}
	if err := helper.ValidateInput(&input); err != nil {
		failure.Fprintln(m.out, "Owner name must not be empty.")
		return nil
	}

	created, err := m.ledger.CreateAccount(input.OwnerName)
	if err != nil {
		return err
	}
	success.Fprintln(m.out, "Account created successfully.")
	fmt.Fprintf(m.out, "Account ID: %s\n", created.Id)
	return nil
}

func (m *Menu) deposit() error {
	header.Fprintln(m.out, "\n=== Deposit ===")
	id, ok, err := m.promptAccountId()
	if err != nil || !ok {
		return err
	}
	amount, ok, err := m.promptAmount("Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	newBalance, err := m.ledger.Deposit(id, amount)
	if err != nil {
		return err
	}
	success.Fprintf(m.out, "Deposited %s. New balance: %s\n",
		helper.FormatCurrency(amount, m.symbol), helper.FormatCurrency(newBalance, m.symbol))
	return nil
}

func (m *Menu) withdraw() error {
	header.Fprintln(m.out, "\n=== Withdraw ===")
	id, ok, err := m.promptAccountId()
	if err != nil || !ok {
		return err
	}
	amount, ok, err := m.promptAmount("Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	newBalance, err := m.ledger.Withdraw(id, amount)
	if err != nil {
		return err
	}
	success.Fprintf(m.out, "Withdrew %s. New balance: %s\n",
		helper.FormatCurrency(amount, m.symbol), helper.FormatCurrency(newBalance, m.symbol))
	return nil
}

func (m *Menu) checkBalance() error {
	header.Fprintln(m.out, "\n=== Balance ===")
	id, ok, err := m.promptAccountId()
	if err != nil || !ok {
		return err
	}

	balance, err := m.ledger.Balance(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Current balance: %s\n", helper.FormatCurrency(balance, m.symbol))
	return nil
}

func (m *Menu) viewTransactions() error {
	header.Fprintln(m.out, "\n=== Transaction History ===")
	id, ok, err := m.promptAccountId()
	if err != nil || !ok {
		return err
	}

	records, err := m.ledger.History(id)
	if err != nil {
		return err
	}
	m.renderHistory(records)
	return nil
}

func (m *Menu) listAccounts() error {
	header.Fprintln(m.out, "\n=== Accounts ===")
	accounts, err := m.ledger.ListAccounts()
	if err != nil {
		return err
	}
	m.renderAccounts(accounts)
	return nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptAccountId reads and parses an account id. A malformed id is reported
// to the user and signalled with ok=false; only read failures return an error.
func (m *Menu) promptAccountId() (id uuid.UUID, ok bool, err error) {
	raw, err := m.prompt("Enter account id: ")
	if err != nil {
		return uuid.UUID{}, false, err
	}
	id, parseErr := uuid.Parse(raw)
	if parseErr != nil {
		failure.Fprintln(m.out, "Invalid account id.")
		return uuid.UUID{}, false, nil
	}
	return id, true, nil
}

func (m *Menu) promptAmount(label string) (amount decimal.Decimal, ok bool, err error) {
	raw, err := m.prompt(label)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	amount, parseErr := decimal.NewFromString(raw)
	if parseErr != nil {
		failure.Fprintln(m.out, "Invalid amount. Please enter a numeric value.")
		return decimal.Decimal{}, false, nil
	}
	return amount, true, nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return "No account found with that id."
	case errors.Is(err, account.ErrInvalidAmount):
		return "Amount must be greater than 0."
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, account.ErrDuplicateAccount):
		return "Account id collision, please try again."
	default:
		return err.Error()
	}
}
