package v1

import (
	"fmt"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchRuleEditable contains the fields of a match rule that can be updated.
type MatchRuleEditable struct {
	Priority uint                `json:"priority" example:"3"`          // The priority of the match rule. Rules with a lower priority are applied first
	Match    string              `json:"match" example:"Rent*"`         // The glob pattern the note of the expense is matched against
	Category allocation.Category `json:"category" example:"fixedCosts"` // The category the matching expense is spent from
}

// MatchRuleCreate is the body for creating a match rule.
type MatchRuleCreate struct {
	UserID uuid.UUID `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"` // ID of the user the match rule belongs to
	MatchRuleEditable
}

func (create MatchRuleCreate) model() models.MatchRule {
	return models.MatchRule{
		UserID:   create.UserID,
		Priority: create.Priority,
		Match:    create.Match,
		Category: create.Category,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
	User string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`       // The user the match rule belongs to
}

// MatchRule is the API representation of a MatchRule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleCreate
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleCreate: MatchRuleCreate{
			UserID: model.UserID,
			MatchRuleEditable: MatchRuleEditable{
				Priority: model.Priority,
				Match:    model.Match,
				Category: model.Category,
			},
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of Match Rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`                                                          // List of the created Match Rules or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the Match Rule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleQueryFilter struct {
	UserID   ez_uuid.UUID        `form:"user"`                       // By ID of the user
	Priority uint                `form:"priority"`                   // By priority
	Match    string              `form:"match" filterField:"false"`  // By match
	Category allocation.Category `form:"category"`                   // By category
	Offset   uint                `form:"offset" filterField:"false"` // The offset of the first Match Rule returned. Defaults to 0.
	Limit    int                 `form:"limit" filterField:"false"`  // Maximum number of Match Rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		UserID:   f.UserID.UUID,
		Priority: f.Priority,
		Category: f.Category,
	}
}
