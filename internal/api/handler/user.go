package handler

import (
	"studycards/internal/models"
	"studycards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupUser struct {
	container *do.Injector
}

type createUserPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (gr *groupUser) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var payload createUserPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}
	if payload.Username == "" {
		return httpx.RestAbort(c, nil, errorx.Wrap(errInvalidPayload("username is required"), errorx.Validation))
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	user, err := serviceUser.FindOrCreateUser(ctx, payload.Username, payload.Email)
	return domainAbort(c, user, err)
}

func (gr *groupUser) GetProgress(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	progress, err := serviceUser.GetProgress(ctx, userID)
	return domainAbort(c, progress, err)
}

func (gr *groupUser) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	settings, err := serviceUser.GetSettings(ctx, userID)
	return domainAbort(c, settings, err)
}

func (gr *groupUser) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var settings models.Settings
	if err := c.Bind(&settings); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	updated, err := serviceUser.UpdateSettings(ctx, userID, &settings)
	return domainAbort(c, updated, err)
}
