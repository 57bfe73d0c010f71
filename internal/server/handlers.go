package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arashek/ade/internal/container"
	"github.com/arashek/ade/internal/security"
	"github.com/arashek/ade/internal/template"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps the service's error taxonomy onto HTTP status codes
func statusFor(err error) int {
	var (
		cfgErr     *container.ConfigError
		valErr     *template.ValidationError
		stateErr   *container.StateError
		timeoutErr *container.TimeoutError
		provErr    *container.ProvisioningError
	)

	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.Is(err, container.ErrContainerNotFound), errors.Is(err, template.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.As(err, &stateErr):
		return http.StatusConflict
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &provErr):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, err error) error {
	return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, s.manager.Templates())
}

func (s *Server) getTemplate(c echo.Context) error {
	tpl, err := s.manager.Template(template.ProjectType(c.Param("projectType")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tpl)
}

func (s *Server) saveTemplate(c echo.Context) error {
	var tpl template.ContainerTemplate
	if err := c.Bind(&tpl); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed template body"})
	}
	if err := s.loader.Save(&tpl); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, &tpl)
}

func (s *Server) deleteTemplate(c echo.Context) error {
	if err := s.loader.Delete(template.ProjectType(c.Param("projectType"))); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createContainer(c echo.Context) error {
	var cfg container.Config
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed container config"})
	}

	id, err := s.manager.Create(c.Request().Context(), &cfg)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) initializeProject(c echo.Context) error {
	var project container.ProjectConfig
	if err := c.Bind(&project); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed project config"})
	}

	id, err := s.manager.InitializeProject(c.Request().Context(), &project)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) listContainers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.manager.List())
}

func (s *Server) getContainer(c echo.Context) error {
	status, err := s.manager.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (s *Server) startContainer(c echo.Context) error {
	return s.lifecycle(c, "running", s.manager.Start)
}

func (s *Server) stopContainer(c echo.Context) error {
	return s.lifecycle(c, "stopped", s.manager.Stop)
}

func (s *Server) pauseContainer(c echo.Context) error {
	return s.lifecycle(c, "paused", s.manager.Pause)
}

func (s *Server) resumeContainer(c echo.Context) error {
	return s.lifecycle(c, "running", s.manager.Resume)
}

func (s *Server) lifecycle(c echo.Context, state string, op func(ctx context.Context, id string) error) error {
	id := c.Param("id")
	if err := op(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id, "state": state})
}

func (s *Server) deleteContainer(c echo.Context) error {
	if err := s.manager.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) containerLogs(c echo.Context) error {
	tail := 100
	if raw := c.QueryParam("tail"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "tail must be a non-negative integer"})
		}
		tail = parsed
	}

	logs, err := s.manager.Logs(c.Request().Context(), c.Param("id"), tail)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id"), "logs": logs})
}

func (s *Server) containerResources(c echo.Context) error {
	res, err := s.manager.Resources(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) updateAllocation(c echo.Context) error {
	var alloc container.Allocation
	if err := c.Bind(&alloc); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed allocation body"})
	}

	if err := s.manager.UpdateAllocation(c.Request().Context(), c.Param("id"), alloc); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id"), "status": "updated"})
}

type execRequest struct {
	Command []string `json:"command"`
}

func (s *Server) execInContainer(c echo.Context) error {
	var req execRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed exec body"})
	}

	result, err := s.manager.Exec(c.Request().Context(), c.Param("id"), req.Command)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type complianceResponse struct {
	Results []security.ComplianceResult `json:"results"`
	Summary security.Summary            `json:"summary"`
}

func (s *Server) checkCompliance(c echo.Context) error {
	var policy security.SecurityPolicy
	if err := c.Bind(&policy); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed security policy"})
	}

	results := s.validator.Validate(&policy)
	return c.JSON(http.StatusOK, complianceResponse{
		Results: results,
		Summary: security.Summarize(results),
	})
}
