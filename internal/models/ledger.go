package models

import (
	"context"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// Ledger gives the allocation engine access to the stored policies,
// ledgers and category balances.
//
// Inside of Transaction, all methods use the transaction carried by
// the context.
type Ledger struct {
	DB *gorm.DB // Defaults to the package level DB
}

func (l Ledger) db(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}

	db := l.DB
	if db == nil {
		db = DB
	}
	return db.WithContext(ctx)
}

// Transaction runs fn in a database transaction. Nested calls reuse the
// transaction of the outer call.
func (l Ledger) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return l.db(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Policy returns the allocation policy of the user.
func (l Ledger) Policy(ctx context.Context, userID uuid.UUID) (allocation.Policy, error) {
	err := userExists(l.db(ctx), userID)
	if err != nil {
		return nil, err
	}

	return LoadPolicy(l.db(ctx), userID)
}

// SavePolicy stores the allocation policy of the user.
func (l Ledger) SavePolicy(ctx context.Context, userID uuid.UUID, p allocation.Policy) error {
	err := userExists(l.db(ctx), userID)
	if err != nil {
		return err
	}

	return SavePolicy(l.db(ctx), userID, p)
}

// Account returns the account if it belongs to the user.
func (l Ledger) Account(ctx context.Context, userID, id uuid.UUID) (Account, error) {
	return ownedAccount(l.db(ctx), userID, id)
}

func (l Ledger) Income(ctx context.Context, id uuid.UUID) (Income, error) {
	var income Income
	err := l.db(ctx).First(&income, "id = ?", id).Error
	return income, err
}

// Incomes returns the income events of the user in the month, oldest first.
func (l Ledger) Incomes(ctx context.Context, userID uuid.UUID, month types.Month) ([]Income, error) {
	var incomes []Income
	err := l.db(ctx).
		Where(&Income{UserID: userID, Month: month}).
		Order("date ASC, created_at ASC").
		Find(&incomes).Error
	return incomes, err
}

func (l Ledger) Expenses(ctx context.Context, userID uuid.UUID, month types.Month) ([]Expense, error) {
	var expenses []Expense
	err := l.db(ctx).
		Where(&Expense{UserID: userID, Month: month}).
		Order("date ASC, created_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (l Ledger) Transfers(ctx context.Context, userID uuid.UUID, month types.Month) ([]Transfer, error) {
	var transfers []Transfer
	err := l.db(ctx).
		Where(&Transfer{UserID: userID, Month: month}).
		Order("date ASC, created_at ASC").
		Find(&transfers).Error
	return transfers, err
}

func (l Ledger) Investments(ctx context.Context, userID uuid.UUID, month types.Month) ([]Investment, error) {
	var investments []Investment
	err := l.db(ctx).
		Where(&Investment{UserID: userID, Month: month}).
		Order("date ASC, created_at ASC").
		Find(&investments).Error
	return investments, err
}

// CategoryBalances returns the cached balances of the month.
func (l Ledger) CategoryBalances(ctx context.Context, userID uuid.UUID, month types.Month) ([]CategoryBalance, error) {
	var balances []CategoryBalance
	err := l.db(ctx).
		Where(&CategoryBalance{UserID: userID, Month: month}).
		Find(&balances).Error
	return balances, err
}

func (l Ledger) CreateIncome(ctx context.Context, income *Income) error {
	return l.db(ctx).Create(income).Error
}

func (l Ledger) DeleteIncome(ctx context.Context, income Income) error {
	return l.db(ctx).Delete(&income).Error
}

// DeleteAllIncome deletes all income events and cached category balances
// of the user.
func (l Ledger) DeleteAllIncome(ctx context.Context, userID uuid.UUID) error {
	err := l.db(ctx).Unscoped().Where("user_id = ?", userID).Delete(&Income{}).Error
	if err != nil {
		return err
	}

	return l.db(ctx).Where("user_id = ?", userID).Delete(&CategoryBalance{}).Error
}

// UpsertCategoryBalances overwrites the cached balances of the month.
func (l Ledger) UpsertCategoryBalances(ctx context.Context, userID uuid.UUID, month types.Month, balances allocation.Amounts) error {
	rows := balancesOf(userID, month, balances)
	return l.db(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(&rows).Error
}
