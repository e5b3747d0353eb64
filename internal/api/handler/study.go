package handler

import (
	"studycards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupStudy struct {
	container *do.Injector
}

type studyTimePayload struct {
	Subject string `json:"subject"`
	Seconds int64  `json:"seconds"`
}

func (gr *groupStudy) ReportStudyTime(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload studyTimePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	serviceStudy, err := do.Invoke[*services.ServiceStudy](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	report, err := serviceStudy.ReportStudyTime(ctx, userID, payload.Subject, payload.Seconds)
	return domainAbort(c, report, err)
}

func (gr *groupStudy) GetStudyLogs(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceStudy, err := do.Invoke[*services.ServiceStudy](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	logs, err := serviceStudy.GetStudyLogs(ctx, userID)
	return domainAbort(c, logs, err)
}

func (gr *groupStudy) GetStreak(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := paramUserID(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceStudy, err := do.Invoke[*services.ServiceStudy](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	streak, err := serviceStudy.GetStreak(ctx, userID)
	return domainAbort(c, map[string]int{"study_streak": streak}, err)
}
