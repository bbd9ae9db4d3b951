package echoapi

import (
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
)

type activityApi struct {
	svc      activity.ServiceInterface
	validate *validator.Validate
}

func registerActivityAPI(g *echo.Group, svc activity.ServiceInterface, validate *validator.Validate) {
	api := activityApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("/:name/signup", api.signup)
}

// Handlers

func (api *activityApi) query(ctx echo.Context) error {
	cat, err := api.svc.List()
	if err != nil {
		return errors.Wrap(err, "listing activities")
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (api *activityApi) signup(ctx echo.Context) error {
	name, err := pathParam(ctx, "name")
	if err != nil {
		return errHttpActivityNotFound
	}

	data := activity.Signup{
		Activity: name,
		Email:    ctx.QueryParam("email"),
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Signup(data)
	if err != nil {
		return errors.Wrap(err, "signing up")
	}
	return ctx.JSON(http.StatusOK, res)
}

// pathParam returns the decoded value of a path param.
// echo routes on URL.RawPath when it is set (e.g. an encoded "/"), leaving params escaped;
// otherwise it routes on the already decoded URL.Path and params must not be decoded again.
func pathParam(ctx echo.Context, name string) (string, error) {
	value := ctx.Param(name)
	if ctx.Request().URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
