package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUsers)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
		r.DELETE("/:id", DeleteUser)
	}

	// Allocation policy of the user
	{
		r.OPTIONS("/:id/policy", OptionsPolicy)
		r.GET("/:id/policy", GetPolicy)
		r.PATCH("/:id/policy", UpdatePolicy)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.User{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create users
// @Description	Creates users from the list of submitted user data. Every user starts with the default allocation policy. The response code is the highest response code number that a single user creation would have caused. If it is not equal to 201, at least one user has an error.
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		500		{object}	UserCreateResponse
// @Param			users	body		[]UserEditable	true	"Users"
// @Router			/v1/users [post]
func CreateUsers(c *gin.Context) {
	var users []UserEditable

	err := httputil.BindData(c, &users)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCreateResponse{Error: &e})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCreateResponse{}

	for _, editable := range users {
		user := editable.model()

		err = models.DB.Create(&user).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newUser(c, user)
		r.Data = append(r.Data, UserResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get users
// @Description	Returns a list of users
// @Tags			Users
// @Produce		json
// @Success		200			{object}	UserListResponse
// @Failure		400			{object}	UserListResponse
// @Failure		500			{object}	UserListResponse
// @Param			name		query		string	false	"Filter by name"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			offset		query		uint	false	"The offset of the first User returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Users to return. Defaults to 50."
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UserListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC").Where(filter.model(), queryFields...)

	// Filter for names containing the query string or an explicitly empty one
	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	limit := limit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{Error: &e})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	user, err := fromURI[models.User](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Update a user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	user, err := fromURI[models.User](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	patch(&user, data, updateFields)
	err = models.DB.Save(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}

// @Summary		Delete user
// @Description	Deletes a user
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	deleteResource(c, models.User{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id}/policy [options]
func OptionsPolicy(c *gin.Context) {
	resourceOptionsDetail(c, models.User{}, httputil.OptionsGetPatch)
}

// @Summary		Get allocation policy
// @Description	Returns the allocation policy of a user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	PolicyResponse
// @Failure		400	{object}	PolicyResponse
// @Failure		404	{object}	PolicyResponse
// @Failure		500	{object}	PolicyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id}/policy [get]
func GetPolicy(c *gin.Context) {
	user, err := fromURI[models.User](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	p, err := models.LoadPolicy(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	data := newPolicy(c, user, p)
	c.JSON(http.StatusOK, PolicyResponse{Data: &data})
}

// @Summary		Update allocation policy
// @Description	Updates the allocation policy of a user and recomputes the category balances of the current month. Only the categories to be updated need to be specified. A user without a policy must specify all categories.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	PolicyResponse
// @Failure		400		{object}	PolicyResponse
// @Failure		404		{object}	PolicyResponse
// @Failure		500		{object}	PolicyResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			policy	body		PolicyEditable	true	"Policy"
// @Router			/v1/users/{id}/policy [patch]
func UpdatePolicy(c *gin.Context) {
	user, err := fromURI[models.User](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	var data PolicyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	current, err := models.LoadPolicy(models.DB, user.ID)
	if err != nil && !errors.Is(err, models.ErrPolicyMissing) {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	p, err := data.merge(current)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	err = service.UpdatePolicy(c.Request.Context(), user.ID, p)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PolicyResponse{Error: &e})
		return
	}

	apiResource := newPolicy(c, user, p)
	c.JSON(http.StatusOK, PolicyResponse{Data: &apiResource})
}
