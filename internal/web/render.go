package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
	"github.com/labstack/echo/v4"
)

// Render writes a component as a 200 HTML response.
func Render(c echo.Context, component templ.Component) error {
	return RenderStatus(c, http.StatusOK, component)
}

// RenderStatus writes a component as an HTML response with the given status.
func RenderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// generated builds a component the way templ-generated code does: a pooled
// buffer in front of the writer, released (and flushed) on return, and an
// initialised templ context with the children taken off it. name shows up
// in render errors.
func generated(name string, render func(h *html)) templ.Component {
	return templruntime.GeneratedTemplate(func(in templruntime.GeneratedComponentInput) (err error) {
		ctx := in.Context
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		buf, isBuffer := templruntime.GetBuffer(in.Writer)
		if !isBuffer {
			defer func() {
				bufErr := templruntime.ReleaseBuffer(buf)
				if err == nil {
					err = bufErr
				}
			}()
		}
		ctx = templ.InitializeContext(ctx)
		body := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		h := &html{ctx: ctx, buf: buf, name: name, body: body}
		render(h)
		return h.err
	})
}

// withBody renders layout with body as its children.
func withBody(layout, body templ.Component) templ.Component {
	return templruntime.GeneratedTemplate(func(in templruntime.GeneratedComponentInput) error {
		return layout.Render(templ.WithChildren(in.Context, body), in.Writer)
	})
}

// html writes markup into the render buffer and keeps the first error;
// every write after a failure is a no-op.
type html struct {
	ctx  context.Context
	buf  *templruntime.Buffer
	name string
	body templ.Component
	err  error
}

// raw writes trusted markup.
func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = h.buf.WriteString(s)
	}
}

// text writes an escaped string, usable both as element text and inside a
// double-quoted attribute.
func (h *html) text(s string) {
	if h.err != nil {
		return
	}
	v, err := templ.JoinStringErrs(s)
	if err != nil {
		h.err = templ.Error{Err: err, FileName: h.name}
		return
	}
	_, h.err = h.buf.WriteString(templ.EscapeString(v))
}

// id writes a record id.
func (h *html) id(id uint) {
	if h.err != nil {
		return
	}
	v, err := templ.JoinStringErrs(fmt.Sprint(id))
	if err != nil {
		h.err = templ.Error{Err: err, FileName: h.name}
		return
	}
	_, h.err = h.buf.WriteString(v)
}

// count writes a tally.
func (h *html) count(n int64) {
	if h.err != nil {
		return
	}
	v, err := templ.JoinStringErrs(fmt.Sprint(n))
	if err != nil {
		h.err = templ.Error{Err: err, FileName: h.name}
		return
	}
	_, h.err = h.buf.WriteString(v)
}

// component renders a nested component into the same buffer.
func (h *html) component(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.buf)
	}
}

// children renders the body passed through withBody, if any.
func (h *html) children() {
	h.component(h.body)
}
