// Package tracking allocates income, keeps the cached category balances
// in sync with the ledgers and reports how categories are tracking.
package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Clock returns the current time.
type Clock func() time.Time

// Service runs the allocation engine against a Ledger.
//
// All recomputations of the category balances of one user and month are
// serialized. A Service must therefore be shared by everything writing to
// the same Ledger.
type Service struct {
	ledger Ledger
	now    Clock
	locks  *keyedMutex
}

// NewService returns a Service. A nil clock uses time.Now.
func NewService(ledger Ledger, now Clock) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		ledger: ledger,
		now:    now,
		locks:  newKeyedMutex(),
	}
}

// Now returns the current time in UTC.
func (s *Service) Now() time.Time {
	return s.now().In(time.UTC)
}

// IncomeInput is an income event submitted by a user.
type IncomeInput struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time // Informational, defaults to now. The income always counts towards the current month
	Note      string
}

// IncomeCalculation is the breakdown of a single income event.
type IncomeCalculation struct {
	Income                 decimal.Decimal `json:"income" example:"1000"`                     // The submitted amount
	FixedCosts             decimal.Decimal `json:"fixedCosts" example:"500"`                  // Allocated to fixed costs
	Savings                decimal.Decimal `json:"savings" example:"200"`                     // Allocated to savings
	Investment             decimal.Decimal `json:"investment" example:"100"`                  // Allocated to investment
	GuiltFreeSpending      decimal.Decimal `json:"guiltFreeSpending" example:"200"`           // Allocated to guilt-free spending
	Total                  decimal.Decimal `json:"total" example:"1000"`                      // Sum of all categories. Equal to income unless deposited to a cash account
	SavingsOverCap         decimal.Decimal `json:"savingsOverCap" example:"0"`                // Part of savings above the savings cap for the month
	DepositedToAccountName *string         `json:"depositedToAccountName" example:"Checking"` // Name of the account the income was deposited to
	IsCashAccount          bool            `json:"isCashAccount" example:"false"`             // Cash deposits are not allocated
}

func calculation(amount decimal.Decimal, res *allocation.Result, account *models.Account) IncomeCalculation {
	c := IncomeCalculation{
		Income:            amount,
		FixedCosts:        decimal.Zero,
		Savings:           decimal.Zero,
		Investment:        decimal.Zero,
		GuiltFreeSpending: decimal.Zero,
		Total:             decimal.Zero,
		SavingsOverCap:    decimal.Zero,
	}

	if account != nil {
		c.DepositedToAccountName = &account.Name
		c.IsCashAccount = account.IsCash()
	}

	if res == nil {
		return c
	}

	c.FixedCosts = res.Amounts[allocation.FixedCosts]
	c.Savings = res.Amounts[allocation.Savings]
	c.Investment = res.Amounts[allocation.Investment]
	c.GuiltFreeSpending = res.Amounts[allocation.GuiltFreeSpending]
	c.Total = res.Amounts.Total()
	c.SavingsOverCap = res.SinkOverCap

	return c
}

// AddIncome stores an income event and recomputes the category balances
// of its month.
//
// The amount and the policy are checked before anything is written. The
// income is stored and the balances are recomputed in one transaction.
func (s *Service) AddIncome(ctx context.Context, in IncomeInput) (models.Income, IncomeCalculation, error) {
	if !in.Amount.IsPositive() {
		return models.Income{}, IncomeCalculation{}, models.ErrInvalidAmount
	}

	p, err := s.ledger.Policy(ctx, in.UserID)
	if err != nil {
		return models.Income{}, IncomeCalculation{}, err
	}

	var account *models.Account
	if in.AccountID != nil && *in.AccountID != uuid.Nil {
		a, err := s.ledger.Account(ctx, in.UserID, *in.AccountID)
		if err != nil {
			return models.Income{}, IncomeCalculation{}, err
		}
		account = &a
	}

	// Income counts towards the month it is recorded in
	now := s.Now()
	month := types.MonthOf(now)

	date := in.Date
	if date.IsZero() {
		date = now
	}

	income := models.Income{
		UserID:                in.UserID,
		AccountID:             in.AccountID,
		Amount:                in.Amount,
		Date:                  date,
		Month:                 month,
		Note:                  in.Note,
		ExcludeFromAllocation: account != nil && account.IsCash(),
	}

	var calc IncomeCalculation
	err = s.locked(ctx, in.UserID, month, func(ctx context.Context) error {
		prior, err := s.ledger.Incomes(ctx, in.UserID, month)
		if err != nil {
			return err
		}

		var breakdown *allocation.Result
		if !income.ExcludeFromAllocation {
			existing := allocation.ComputeMonthBalances(incomesOf(prior), p).Balances
			res := allocation.Breakdown(in.Amount, existing, p)
			breakdown = &res
		}

		err = s.ledger.CreateIncome(ctx, &income)
		if err != nil {
			return err
		}

		calc = calculation(in.Amount, breakdown, account)

		_, err = s.recompute(ctx, in.UserID, month, p)
		return err
	})
	if err != nil {
		return models.Income{}, IncomeCalculation{}, err
	}

	log.Ctx(ctx).Debug().
		Str("user", in.UserID.String()).
		Str("month", month.String()).
		Str("income", in.Amount.String()).
		Bool("cash", calc.IsCashAccount).
		Msg("income allocated")

	return income, calc, nil
}

// Recompute derives the category balances of the month from all of its
// income events and overwrites the cached balances. Running it again
// without ledger changes yields the same balances.
func (s *Service) Recompute(ctx context.Context, userID uuid.UUID, month types.Month) (allocation.MonthBalances, error) {
	p, err := s.ledger.Policy(ctx, userID)
	if err != nil {
		return allocation.MonthBalances{}, err
	}

	var balances allocation.MonthBalances
	err = s.locked(ctx, userID, month, func(ctx context.Context) error {
		balances, err = s.recompute(ctx, userID, month, p)
		return err
	})

	return balances, err
}

// DeleteIncome deletes an income event and recomputes its month.
func (s *Service) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	income, err := s.ledger.Income(ctx, id)
	if err != nil {
		return err
	}

	return s.locked(ctx, income.UserID, income.Month, func(ctx context.Context) error {
		err := s.ledger.DeleteIncome(ctx, income)
		if err != nil {
			return err
		}

		// Without a policy there is nothing to recompute
		p, err := s.ledger.Policy(ctx, income.UserID)
		if errors.Is(err, models.ErrPolicyMissing) {
			return nil
		} else if err != nil {
			return err
		}

		_, err = s.recompute(ctx, income.UserID, income.Month, p)
		return err
	})
}

// ResetIncome deletes all income events and all cached category balances
// of the user.
//
// It holds the lock of the current month, the only month income is added
// to, so no submission can write balances for income that was just deleted.
func (s *Service) ResetIncome(ctx context.Context, userID uuid.UUID) error {
	return s.locked(ctx, userID, types.MonthOf(s.Now()), func(ctx context.Context) error {
		return s.ledger.DeleteAllIncome(ctx, userID)
	})
}

// UpdatePolicy stores the policy and recomputes the current month with it.
func (s *Service) UpdatePolicy(ctx context.Context, userID uuid.UUID, p allocation.Policy) error {
	err := p.Validate()
	if err != nil {
		return err
	}

	month := types.MonthOf(s.Now())
	return s.locked(ctx, userID, month, func(ctx context.Context) error {
		err := s.ledger.SavePolicy(ctx, userID, p)
		if err != nil {
			return err
		}

		_, err = s.recompute(ctx, userID, month, p)
		return err
	})
}

// locked runs fn in a transaction while holding the lock for the user and month.
func (s *Service) locked(ctx context.Context, userID uuid.UUID, month types.Month, fn func(ctx context.Context) error) error {
	unlock := s.locks.Lock(keyOf(userID, month))
	defer unlock()

	return s.ledger.Transaction(ctx, fn)
}

// recompute must only be called by functions holding the lock for the
// user and month.
func (s *Service) recompute(ctx context.Context, userID uuid.UUID, month types.Month, p allocation.Policy) (balances allocation.MonthBalances, err error) {
	defer func() { observe(err) }()

	incomes, err := s.ledger.Incomes(ctx, userID, month)
	if err != nil {
		return allocation.MonthBalances{}, err
	}

	balances = allocation.ComputeMonthBalances(incomesOf(incomes), p)

	err = s.ledger.UpsertCategoryBalances(ctx, userID, month, balances.Balances)
	if err != nil {
		return allocation.MonthBalances{}, err
	}

	if balances.SavingsOverCap.IsPositive() {
		log.Ctx(ctx).Info().
			Str("user", userID.String()).
			Str("month", month.String()).
			Str("overCap", balances.SavingsOverCap.String()).
			Msg("savings above cap")
	}

	return balances, nil
}
