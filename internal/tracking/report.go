package tracking

import (
	"context"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// HistoryMonths is the number of months covered by History.
const HistoryMonths = 6

// Report is the state of all categories in a month.
type Report struct {
	Tracking map[allocation.Category]allocation.Snapshot `json:"tracking"`
	Month    int                                         `json:"month" example:"3"`
	Year     int                                         `json:"year" example:"2026"`
}

// HistoryReport is the trend of all categories over the trailing months.
type HistoryReport struct {
	History map[allocation.Category][]allocation.Point `json:"history"`
}

// ledgerSlice is everything recorded for a user in one month.
type ledgerSlice struct {
	incomes     []models.Income
	expenses    []models.Expense
	transfers   []models.Transfer
	investments []models.Investment
}

func (l ledgerSlice) allocated(p allocation.Policy) allocation.Amounts {
	return allocation.ComputeMonthBalances(incomesOf(l.incomes), p).Balances
}

func (l ledgerSlice) spent() allocation.Amounts {
	return allocation.Spent(expensesOf(l.expenses), investmentsOf(l.investments))
}

// slice reads the ledgers of a month concurrently. Transfers are only read
// when withTransfers is set.
func (s *Service) slice(ctx context.Context, userID uuid.UUID, month types.Month, withTransfers bool) (ledgerSlice, error) {
	var l ledgerSlice
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		l.incomes, err = s.ledger.Incomes(ctx, userID, month)
		return
	})

	g.Go(func() (err error) {
		l.expenses, err = s.ledger.Expenses(ctx, userID, month)
		return
	})

	g.Go(func() (err error) {
		l.investments, err = s.ledger.Investments(ctx, userID, month)
		return
	})

	if withTransfers {
		g.Go(func() (err error) {
			l.transfers, err = s.ledger.Transfers(ctx, userID, month)
			return
		})
	}

	return l, g.Wait()
}

// Tracking reports allocated, spent, transferred and carried over funds for
// every category of the month.
//
// Only the cached category balances of the current month are kept in sync
// with the policy, so they are the only ones read. The allocation of any
// other month, and of a current month that has never been synced, is
// derived from its income events without writing the cache. The allocation
// of the previous month is always derived from its income events.
func (s *Service) Tracking(ctx context.Context, userID uuid.UUID, month types.Month) (Report, error) {
	p, err := s.ledger.Policy(ctx, userID)
	if err != nil {
		return Report{}, err
	}

	var (
		cached            []models.CategoryBalance
		current, previous ledgerSlice
	)

	synced := month.Contains(s.Now())

	g, gctx := errgroup.WithContext(ctx)
	if synced {
		g.Go(func() (err error) {
			cached, err = s.ledger.CategoryBalances(gctx, userID, month)
			return
		})
	}

	g.Go(func() (err error) {
		current, err = s.slice(gctx, userID, month, true)
		return
	})

	g.Go(func() (err error) {
		previous, err = s.slice(gctx, userID, month.AddDate(0, -1), false)
		return
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	allocated := balancesOf(cached)
	if len(cached) == 0 {
		allocated = current.allocated(p)
	}

	spent := current.spent()
	transferred := allocation.Transferred(transfersOf(current.transfers))
	previousAllocated := previous.allocated(p)
	previousSpent := previous.spent()

	report := Report{
		Tracking: make(map[allocation.Category]allocation.Snapshot, len(allocation.Order)),
		Month:    month.Number(),
		Year:     month.Year(),
	}

	for _, c := range allocation.Order {
		report.Tracking[c] = allocation.Track(c, allocation.Figures{
			Allocated:         allocated[c],
			Spent:             spent[c],
			Transferred:       transferred[c],
			PreviousAllocated: previousAllocated[c],
			PreviousSpent:     previousSpent[c],
		})
	}

	return report, nil
}

// History re-derives allocated and spent funds of every category for the
// HistoryMonths months ending with month, oldest first.
//
// It never reads the cached category balances, so the history of a month
// only depends on its ledger entries and the current policy.
func (s *Service) History(ctx context.Context, userID uuid.UUID, month types.Month) (HistoryReport, error) {
	p, err := s.ledger.Policy(ctx, userID)
	if err != nil {
		return HistoryReport{}, err
	}

	months := month.Trailing(HistoryMonths)
	points := make([]map[allocation.Category]allocation.Point, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range months {
		g.Go(func() error {
			l, err := s.slice(gctx, userID, m, false)
			if err != nil {
				return err
			}

			points[i] = allocation.Project(m.Label(), l.allocated(p), l.spent())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return HistoryReport{}, err
	}

	history := make(map[allocation.Category][]allocation.Point, len(allocation.Order))
	for _, c := range allocation.Order {
		history[c] = make([]allocation.Point, 0, len(months))
		for _, month := range points {
			history[c] = append(history[c], month[c])
		}
	}

	return HistoryReport{History: history}, nil
}
