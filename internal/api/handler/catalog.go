package handler

import (
	"studycards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupCatalog struct {
	container *do.Injector
}

func (gr *groupCatalog) Show(c echo.Context) error {
	ctx := c.Request().Context()

	serviceCatalog, err := do.Invoke[*services.ServiceCatalog](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	catalog, err := serviceCatalog.GetCatalog(ctx)
	return domainAbort(c, catalog, err)
}
