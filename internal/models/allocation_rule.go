package models

import (
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationRule is the allocation rule of one category for a user.
// The rules of all four categories form the user's allocation policy.
type AllocationRule struct {
	UserID    uuid.UUID           `gorm:"primaryKey"`
	User      User                `json:"-"`
	Category  allocation.Category `gorm:"primaryKey"`
	Mode      allocation.Mode
	Value     decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	Cap       decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AllocationRule) Self() string {
	return "Allocation Rule"
}

func rulesOf(userID uuid.UUID, p allocation.Policy) []AllocationRule {
	rules := make([]AllocationRule, 0, len(allocation.Order))
	for _, c := range allocation.Order {
		rule := p[c]
		rules = append(rules, AllocationRule{
			UserID:   userID,
			Category: c,
			Mode:     rule.Mode,
			Value:    rule.Value,
			Cap:      rule.Cap,
		})
	}
	return rules
}

// LoadPolicy returns the allocation policy of the user.
//
// ErrPolicyMissing is returned when no rules are stored for the user.
func LoadPolicy(db *gorm.DB, userID uuid.UUID) (allocation.Policy, error) {
	var rules []AllocationRule
	err := db.Where(&AllocationRule{UserID: userID}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	if len(rules) == 0 {
		return nil, ErrPolicyMissing
	}

	p := make(allocation.Policy, len(rules))
	for _, r := range rules {
		p[r.Category] = allocation.Rule{
			Mode:  r.Mode,
			Value: r.Value,
			Cap:   r.Cap,
		}
	}

	return p, p.Validate()
}

// SavePolicy validates and stores the allocation policy of the user.
func SavePolicy(db *gorm.DB, userID uuid.UUID, p allocation.Policy) error {
	err := p.Validate()
	if err != nil {
		return err
	}

	rules := rulesOf(userID, p)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"mode", "value", "cap", "updated_at"}),
	}).Create(&rules).Error
}
