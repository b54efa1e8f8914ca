package tracking

import (
	"context"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the storage the Service works on.
//
// Transaction runs fn atomically. All Ledger calls made with the context
// passed to fn are part of the transaction.
type Ledger interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	Policy(ctx context.Context, userID uuid.UUID) (allocation.Policy, error)
	SavePolicy(ctx context.Context, userID uuid.UUID, p allocation.Policy) error
	Account(ctx context.Context, userID, id uuid.UUID) (models.Account, error)

	Income(ctx context.Context, id uuid.UUID) (models.Income, error)
	Incomes(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Income, error)
	Expenses(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Expense, error)
	Transfers(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Transfer, error)
	Investments(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Investment, error)

	CreateIncome(ctx context.Context, income *models.Income) error
	DeleteIncome(ctx context.Context, income models.Income) error
	DeleteAllIncome(ctx context.Context, userID uuid.UUID) error

	CategoryBalances(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.CategoryBalance, error)
	UpsertCategoryBalances(ctx context.Context, userID uuid.UUID, month types.Month, balances allocation.Amounts) error
}

var _ Ledger = models.Ledger{}

func incomesOf(incomes []models.Income) []allocation.Income {
	out := make([]allocation.Income, 0, len(incomes))
	for _, i := range incomes {
		out = append(out, allocation.Income{
			Amount:                i.Amount,
			ExcludeFromAllocation: i.ExcludeFromAllocation,
		})
	}
	return out
}

func expensesOf(expenses []models.Expense) []allocation.Expense {
	out := make([]allocation.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, allocation.Expense{Amount: e.Amount, Category: e.Category})
	}
	return out
}

func transfersOf(transfers []models.Transfer) []allocation.Transfer {
	out := make([]allocation.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, allocation.Transfer{Amount: t.Amount, Category: t.Category})
	}
	return out
}

func investmentsOf(investments []models.Investment) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(investments))
	for _, i := range investments {
		out = append(out, i.Amount)
	}
	return out
}

func balancesOf(rows []models.CategoryBalance) allocation.Amounts {
	balances := allocation.NewAmounts()
	for _, r := range rows {
		if r.Category.Valid() {
			balances[r.Category] = r.Balance
		}
	}
	return balances
}
