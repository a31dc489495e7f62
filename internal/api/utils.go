package api

import (
	"github.com/labstack/echo/v4"
)

// bindBody decodes the JSON request body into v. Path parameters are not
// bound, so a body id can be compared against the path id afterwards.
func bindBody(c echo.Context, v interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return BadRequestError("Invalid request body", bindMessage(err))
	}
	return nil
}

func bindMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
