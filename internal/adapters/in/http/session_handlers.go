package http

import (
	"net/http"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// SignIn handles POST /api/v1/session - opens a console session.
func (s *Server) SignIn(ctx echo.Context) error {
	var req servers.SignInJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSignInCommand(req.Email, req.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	opened, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Session{
		Token:     opened.ID().String(),
		ExpiresAt: opened.ExpiresAt(),
		User:      toOperator(opened.Operator()),
	})
}

// SignOut handles DELETE /api/v1/session - closes the current session.
func (s *Server) SignOut(ctx echo.Context) error {
	current, ok := currentSession(ctx)
	if !ok {
		return writeError(ctx, http.StatusUnauthorized, errSessionRequired.Error())
	}

	cmd, err := commands.NewSignOutCommand(current.SessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SignOut.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterUser handles POST /api/v1/users - creates a remote account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req servers.RegisterUserJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterOperatorCommand(req.Name, req.Email, req.Password, fromAddress(req.Address))
	if err != nil {
		return s.fail(ctx, err)
	}

	operator, err := s.handlers.RegisterOperator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOperator(operator))
}

func toOperator(o session.Operator) servers.Operator {
	return servers.Operator{Id: o.ID, Name: o.Name, Email: o.Email, Role: o.Role}
}

func fromAddress(a *servers.Address) session.Address {
	if a == nil {
		return session.Address{}
	}
	return session.Address{
		Street:     deref(a.Street),
		City:       deref(a.City),
		State:      deref(a.State),
		PostalCode: deref(a.PostalCode),
		Country:    deref(a.Country),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
