package handler

import (
	"errors"
	"net/http"
	"strconv"

	"studycards/internal/pkg/limiter"
	"studycards/internal/pkg/loot"
	"studycards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "📚")
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})
		routesAPIv1.Use(cors)

		u := groupUser{cfg.Container}
		routesAPIv1.POST("/users", u.Create)
		routesAPIv1.GET("/users/:id/progress", u.GetProgress)
		routesAPIv1.GET("/users/:id/settings", u.GetSettings)
		routesAPIv1.PUT("/users/:id/settings", u.UpdateSettings)

		s := groupStudy{cfg.Container}
		routesAPIv1.POST("/users/:id/study-time", s.ReportStudyTime)
		routesAPIv1.GET("/users/:id/study-logs", s.GetStudyLogs)
		routesAPIv1.GET("/users/:id/streak", s.GetStreak)

		d := groupDrops{cfg.Container}
		routesAPIv1.POST("/users/:id/drops", d.GenerateChoices)
		routesAPIv1.POST("/users/:id/drops/claim", d.Claim)
		routesAPIv1.GET("/users/:id/inventory", d.GetInventory)

		ca := groupCatalog{cfg.Container}
		routesAPIv1.GET("/catalog", ca.Show)
	}

	return r, nil
}

// domainAbort maps service errors onto REST kinds before handing the response
// to RestAbort. Unknown errors fall through untouched so RestAbort treats them
// as internal.
func domainAbort(c echo.Context, v any, err error) error {
	switch {
	case err == nil:
		return httpx.RestAbort(c, v, nil)
	case errors.Is(err, services.ErrNotFound):
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.NotExist))
	case errors.Is(err, services.ErrNoDropsAvailable),
		errors.Is(err, services.ErrUserClaimLock),
		errors.Is(err, loot.ErrInvalidInput):
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	case errors.Is(err, limiter.ErrRateLimited):
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.RateLimiting))
	case errors.Is(err, loot.ErrEmptyCatalog), errors.Is(err, loot.ErrInvalidCatalog):
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	default:
		return httpx.RestAbort(c, nil, err)
	}
}

func errInvalidPayload(msg string) error {
	return errors.New(msg)
}

func paramUserID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errorx.Wrap(errors.New("invalid user id"), errorx.Validation)
	}
	return id, nil
}
