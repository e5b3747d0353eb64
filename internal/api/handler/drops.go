package handler

import (
	"studycards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupDrops struct {
	container *do.Injector
}

type claimPayload struct {
	CardID string `json:"card_id"`
}

func (gr *groupDrops) GenerateChoices(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceDrops, err := do.Invoke[*services.ServiceDrops](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	cards, err := serviceDrops.GenerateDropChoices(ctx, userID)
	return domainAbort(c, cards, err)
}

func (gr *groupDrops) Claim(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload claimPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}
	if payload.CardID == "" {
		return httpx.RestAbort(c, nil, errorx.Wrap(errInvalidPayload("card_id is required"), errorx.Validation))
	}

	serviceDrops, err := do.Invoke[*services.ServiceDrops](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceDrops.ClaimDrop(ctx, userID, payload.CardID)
	return domainAbort(c, result, err)
}

func (gr *groupDrops) GetInventory(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceDrops, err := do.Invoke[*services.ServiceDrops](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	items, err := serviceDrops.GetInventory(ctx, userID)
	return domainAbort(c, items, err)
}
