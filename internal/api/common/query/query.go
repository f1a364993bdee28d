package query

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/filter"
	"readings-api-server/internal/utils"
)

const msgInvalidEpoch = `Please enter an epoch timestamp for "%s"`

func InvalidEpochErr(field string) commonerrors.ValidationError {
	return commonerrors.ValidationErr(field, fmt.Sprintf(msgInvalidEpoch, field))
}

// Query 파라미터들 parsing 하기 위해 사용함
type parseQuery struct {
	SensorType string `query:"type"`
	StartTime  string `query:"start"`
	EndTime    string `query:"end"`
}

type Query struct {
	ID     string
	Filter filter.Filter
}

func (q parseQuery) ParseAndValidate(c *fiber.Ctx, typeRequired bool) (Query, error) {
	var (
		id, _      = c.Locals("requestid").(string)
		deviceUUID = c.Params("uuid")
		start      *int64
		end        *int64
	)

	if typeRequired && q.SensorType == "" {
		return Query{}, commonerrors.ValidationErr("type", filter.MsgInvalidType)
	}

	if q.StartTime != "" {
		epoch, err := utils.ParseEpoch(q.StartTime)
		if err != nil {
			return Query{}, InvalidEpochErr("start")
		}
		start = &epoch
	}

	if q.EndTime != "" {
		epoch, err := utils.ParseEpoch(q.EndTime)
		if err != nil {
			return Query{}, InvalidEpochErr("end")
		}
		end = &epoch
	}

	f, err := filter.Build(deviceUUID, q.SensorType, start, end)
	if err != nil {
		return Query{}, err
	}

	return Query{
		ID:     id,
		Filter: f,
	}, nil
}

// ParseAndValidate builds the reading filter of a request from the uuid path
// parameter and the type, start and end query parameters.
func ParseAndValidate(c *fiber.Ctx, typeRequired bool) (Query, error) {
	query := &parseQuery{}
	if err := c.QueryParser(query); err != nil {
		return Query{}, commonerrors.ValidationErr("query", err.Error())
	}
	return query.ParseAndValidate(c, typeRequired)
}
