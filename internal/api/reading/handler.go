package reading

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
	"go.uber.org/zap"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/query"
)

const (
	MsgEmptyInput   = "No readings found for the given filter"
	MsgNoUniqueMode = "No unique mode found for the given readings"
	MsgInternal     = "Internal Server Error"
)

type ReadingHandler struct {
	rs      ReadingService
	timeout time.Duration
	logger  *zap.Logger
}

func ReadingRouter(route fiber.Router, rs ReadingService, timeout time.Duration, logger *zap.Logger) {
	handler := &ReadingHandler{
		rs:      rs,
		timeout: timeout,
		logger:  logger,
	}

	rg := route.Group("/devices/:uuid/readings")
	rg.Post("/", handler.addReading)
	rg.Get("/", handler.getReadings)
	rg.Get("/min", handler.getStatistic(StatMin))
	rg.Get("/max", handler.getStatistic(StatMax))
	rg.Get("/median", handler.getStatistic(StatMedian))
	rg.Get("/mean", handler.getStatistic(StatMean))
	rg.Get("/mode", handler.getStatistic(StatMode))
	rg.Get("/quartiles", handler.getQuartiles)
}

func (h *ReadingHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// respondError maps the service error kinds onto the fixed plain-text responses.
func (h *ReadingHandler) respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr commonerrors.ValidationError
		emptyErr      commonerrors.EmptyInputError
		modeErr       commonerrors.NoUniqueModeError
	)

	switch {
	case errors.As(err, &validationErr):
		h.logger.Debug("validation failed",
			zap.String("field", validationErr.Field),
			zap.String("path", c.Path()))
		return c.Status(fiber.StatusUnprocessableEntity).SendString(validationErr.Message)
	case errors.As(err, &emptyErr):
		h.logger.Debug("no readings", zap.String("statistic", emptyErr.Statistic))
		return c.Status(fiber.StatusUnprocessableEntity).SendString(MsgEmptyInput)
	case errors.As(err, &modeErr):
		return c.Status(fiber.StatusUnprocessableEntity).SendString(MsgNoUniqueMode)
	default:
		h.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(MsgInternal)
	}
}

// @Summary Store a sensor reading
// @Description type는 temperature 또는 humidity, value는 0 이상 100 이하의 정수. date_created가 없으면 현재 시간.
// @Accept  json
// @Produce plain
// @Param uuid path string true "the uuid of device"
// @Param reading body CreateReadingRequest true "the reading"
// @Success 201 {string} string "success"
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /devices/{uuid}/readings/ [post]
func (h *ReadingHandler) addReading(c *fiber.Ctx) error {
	var req CreateReadingRequest
	if err := ffjson.Unmarshal(c.Body(), &req); err != nil {
		h.logger.Debug("body parser error", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).SendString(MsgInvalidBody)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if _, err := h.rs.AddReading(ctx, c.Params("uuid"), req); err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).SendString("success")
}

// @Summary List the readings of a device
// @Description type을 지정하지 않으면 모든 type의 reading을 제공한다.
// @Produce json
// @Param uuid  path  string true  "the uuid of device"
// @Param type  query string false "temperature or humidity"
// @Param start query string false "epoch start time (inclusive)"
// @Param end   query string false "epoch end time (inclusive)"
// @Success 200 {array} models.Reading
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /devices/{uuid}/readings/ [get]
func (h *ReadingHandler) getReadings(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, false)
	if err != nil {
		return h.respondError(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	readings, err := h.rs.GetReadings(ctx, query)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(readings)
}

// @Summary min, max, median, mean or mode of the readings of a device
// @Produce json
// @Param uuid  path  string true  "the uuid of device"
// @Param type  query string true  "temperature or humidity"
// @Param start query string false "epoch start time (inclusive)"
// @Param end   query string false "epoch end time (inclusive)"
// @Success 200 {array} Statistic
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /devices/{uuid}/readings/{statistic}/ [get]
func (h *ReadingHandler) getStatistic(statistic string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query, err := query.ParseAndValidate(c, true)
		if err != nil {
			return h.respondError(c, err)
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		result, err := h.rs.GetStatistic(ctx, query, statistic)
		if err != nil {
			return h.respondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON([]*Statistic{result})
	}
}

// @Summary First and third quartile of the readings of a device
// @Produce json
// @Param uuid  path  string true  "the uuid of device"
// @Param type  query string true  "temperature or humidity"
// @Param start query string false "epoch start time (inclusive)"
// @Param end   query string false "epoch end time (inclusive)"
// @Success 200 {object} Quartiles
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /devices/{uuid}/readings/quartiles/ [get]
func (h *ReadingHandler) getQuartiles(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, true)
	if err != nil {
		return h.respondError(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	quartiles, err := h.rs.GetQuartiles(ctx, query)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(quartiles)
}
