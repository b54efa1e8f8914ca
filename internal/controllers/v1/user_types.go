package v1

import (
	"fmt"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UserEditable struct {
	Name     string `json:"name" example:"Ada"`                   // Name of the user
	Note     string `json:"note" example:"Household budget"`      // A note about the user
	Currency string `json:"currency" example:"EUR" default:"USD"` // ISO 4217 code of the currency all amounts are in
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type UserLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`             // The user itself
	Policy   string `json:"policy" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21/policy"`    // The allocation policy of the user
	Accounts string `json:"accounts" example:"https://example.com/api/v1/accounts?user=95685c82-53c6-455d-b235-f49960b73b21"` // The accounts of the user
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes?user=95685c82-53c6-455d-b235-f49960b73b21"`   // The income of the user
	Tracking string `json:"tracking" example:"https://example.com/api/v1/tracking?user=95685c82-53c6-455d-b235-f49960b73b21"` // The category tracking of the user for the current month
	History  string `json:"history" example:"https://example.com/api/v1/history?user=95685c82-53c6-455d-b235-f49960b73b21"`   // The category history of the user
}

// User is the API representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: UserLinks{
			Self:     fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Policy:   fmt.Sprintf("%s/v1/users/%s/policy", url, model.ID),
			Accounts: fmt.Sprintf("%s/v1/accounts?user=%s", url, model.ID),
			Incomes:  fmt.Sprintf("%s/v1/incomes?user=%s", url, model.ID),
			Tracking: fmt.Sprintf("%s/v1/tracking?user=%s", url, model.ID),
			History:  fmt.Sprintf("%s/v1/history?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of Users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Data  []UserResponse `json:"data"`                                                          // List of the created Users or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the User
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Currency string `form:"currency"`                   // By currency
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Currency: f.Currency,
	}
}

// Rule is the API representation of the allocation rule of a category.
type Rule struct {
	Mode  allocation.Mode     `json:"mode" example:"percentage"`               // percentage or fixed
	Value decimal.Decimal     `json:"value" example:"50" swaggertype:"string"` // Percentage of the income or fixed amount
	Cap   decimal.NullDecimal `json:"cap" example:"600" swaggertype:"string"`  // Monthly ceiling of the allocation to the category. null for no cap
}

// Policy is the API representation of the allocation policy of a user.
type Policy struct {
	Categories map[allocation.Category]Rule `json:"categories"` // The rule for each category
	Links      PolicyLinks                  `json:"links"`
}

// PolicyEditable is the body of a policy update. Only the categories to
// change need to be specified.
type PolicyEditable struct {
	Categories map[string]Rule `json:"categories"`
}

type PolicyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21/policy"` // The policy itself
	User string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`        // The user the policy belongs to
}

type PolicyResponse struct {
	Data  *Policy `json:"data"`                                                                               // Data for the Policy
	Error *string `json:"error" example:"the percentages of all categories must not add up to more than 100"` // The error, if any occurred
}

func newPolicy(c *gin.Context, user models.User, p allocation.Policy) Policy {
	url := c.GetString(string(models.DBContextURL))

	categories := make(map[allocation.Category]Rule, len(p))
	for category, rule := range p {
		categories[category] = Rule{
			Mode:  rule.Mode,
			Value: rule.Value,
			Cap:   rule.Cap,
		}
	}

	return Policy{
		Categories: categories,
		Links: PolicyLinks{
			Self: fmt.Sprintf("%s/v1/users/%s/policy", url, user.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, user.ID),
		},
	}
}

// merge applies the categories of the update to p.
func (editable PolicyEditable) merge(p allocation.Policy) (allocation.Policy, error) {
	merged := make(allocation.Policy, len(allocation.Order))
	for category, rule := range p {
		merged[category] = rule
	}

	for name, rule := range editable.Categories {
		category, err := allocation.ParseCategory(name)
		if err != nil {
			return nil, err
		}

		merged[category] = allocation.Rule{
			Mode:  rule.Mode,
			Value: rule.Value,
			Cap:   rule.Cap,
		}
	}

	return merged, nil
}
