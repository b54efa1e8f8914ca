package models

import (
	"fmt"
	"strings"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to expenses created without one.
// Match is a glob pattern applied to the note of the expense.
type MatchRule struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"index"`
	Priority uint
	Match    string
	Category allocation.Category
}

func (MatchRule) Self() string {
	return "Match Rule"
}

// BeforeSave trims the match and verifies match and category.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	if !r.Category.Valid() {
		return fmt.Errorf("%w, got '%s'", allocation.ErrCategoryInvalid, r.Category)
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)
	return userExists(tx, r.UserID)
}

// MatchCategory returns the category of the first of the user's match
// rules that matches the note. Rules are ordered by priority, then by
// creation. nil is returned when no rule matches.
func MatchCategory(db *gorm.DB, userID uuid.UUID, note string) (*allocation.Category, error) {
	if note == "" {
		return nil, nil
	}

	var rules []MatchRule
	err := db.Where(&MatchRule{UserID: userID}).Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, note) {
			c := rule.Category
			return &c, nil
		}
	}

	return nil, nil
}
