package httpserver

import (
	"net/http"

	"sapientdcs/errs"
	"sapientdcs/pkg/logger"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = errs.Errorf(errs.EINVALID, "invalid request body")

func (s *Server) RegisterSubmissionRoutes(g *echo.Group) {
	g.POST("/submissions", s.handleSubmit)
	g.POST("/submissions/check", s.handleCheck)
}

func (s *Server) RegisterPrivateSubmissionRoutes(g *echo.Group) {
	g.GET("/submissions", s.handleListSubmissions)
	g.GET("/submissions/:id", s.handleGetSubmission)
}

// handleSubmit godoc
// @Summary Submit Contact Us record
// @Description Validate a Contact Us record and store it with its outcome
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body SubmissionRequest true "Contact Us record"
// @Success 201 {object} RecordResponse
// @Failure 400 {object} APIResponse
// @Router /api/submissions [post]
func (s *Server) handleSubmit(c echo.Context) error {
	req, err := bindSubmission(c)
	if err != nil {
		return err
	}

	rec, err := s.SubmissionService.Submit(c.Request().Context(), req.ToSubmission())
	if err != nil {
		return err
	}

	s.Logger.Infow("submission stored",
		"request_id", requestID(c),
		"record_id", rec.ID,
		"contact_email", logger.MaskEmail(rec.Submission.ContactEmail),
		"valid", rec.Outcome.Valid,
		"contact_data_valid", rec.Outcome.ContactDataValid,
		"violations", len(rec.Outcome.Violations),
	)

	return writeSuccess(c, http.StatusCreated, newRecordResponse(rec))
}

// handleCheck godoc
// @Summary Check Contact Us record
// @Description Validate a Contact Us record without storing it
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body SubmissionRequest true "Contact Us record"
// @Success 200 {object} OutcomeResponse
// @Failure 400 {object} APIResponse
// @Router /api/submissions/check [post]
func (s *Server) handleCheck(c echo.Context) error {
	req, err := bindSubmission(c)
	if err != nil {
		return err
	}

	outcome := s.SubmissionService.Check(c.Request().Context(), req.ToSubmission())
	return writeSuccess(c, http.StatusOK, newOutcomeResponse(outcome))
}

// handleListSubmissions godoc
// @Summary List submissions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RecordResponse
// @Router /api/submissions [get]
func (s *Server) handleListSubmissions(c echo.Context) error {
	records, err := s.SubmissionService.ListRecords(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]RecordResponse, len(records))
	for i, rec := range records {
		data[i] = newRecordResponse(rec)
	}
	return writeList(c, http.StatusOK, data)
}

// handleGetSubmission godoc
// @Summary Get submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} APIResponse
// @Router /api/submissions/{id} [get]
func (s *Server) handleGetSubmission(c echo.Context) error {
	var req GetSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec, err := s.SubmissionService.GetRecord(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, newRecordResponse(rec))
}

func bindSubmission(c echo.Context) (SubmissionRequest, error) {
	var req SubmissionRequest
	if err := c.Bind(&req); err != nil {
		return SubmissionRequest{}, errInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return SubmissionRequest{}, err
	}
	return req, nil
}
