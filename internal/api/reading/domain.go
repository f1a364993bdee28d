package reading

import (
	"context"
	"math"
	"time"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/filter"
	"readings-api-server/internal/api/common/query"
	"readings-api-server/internal/models"
	"readings-api-server/internal/utils"
)

const (
	MsgInvalidValue = `Please enter a value between 0 and 100 for "value"`
	MsgInvalidBody  = "Please provide a JSON body"
)

type ReadingRepository interface {
	Insert(ctx context.Context, reading *models.Reading) error
	Scan(ctx context.Context, f filter.Filter) ([]models.Reading, error)
	Values(ctx context.Context, f filter.Filter) ([]int, error)
}

type ReadingService interface {
	AddReading(ctx context.Context, deviceUUID string, req CreateReadingRequest) (*models.Reading, error)
	GetReadings(ctx context.Context, query query.Query) ([]models.Reading, error)
	GetStatistic(ctx context.Context, query query.Query, statistic string) (*Statistic, error)
	GetQuartiles(ctx context.Context, query query.Query) (*Quartiles, error)
}

// CreateReadingRequest is the decoded POST body. Fields stay untyped so
// that every malformed field maps to its own validation message.
type CreateReadingRequest struct {
	Type        interface{} `json:"type"`
	Value       interface{} `json:"value"`
	DateCreated interface{} `json:"date_created,omitempty"`
}

// Validate checks type first, then value, then date_created, and builds the
// reading to store. A missing date_created becomes now.
func (r CreateReadingRequest) Validate(deviceUUID string, now time.Time) (*models.Reading, error) {
	if deviceUUID == "" {
		return nil, commonerrors.ValidationErr("device_uuid", filter.MsgMissingDevice)
	}

	sensorType, ok := r.Type.(string)
	if !ok || !models.SensorType(sensorType).Valid() {
		return nil, commonerrors.ValidationErr("type", filter.MsgInvalidType)
	}

	value, ok := integer(r.Value)
	if !ok || value < models.MinValue || value > models.MaxValue {
		return nil, commonerrors.ValidationErr("value", MsgInvalidValue)
	}

	dateCreated := now.Unix()
	switch v := r.DateCreated.(type) {
	case nil:
	case string:
		epoch, err := utils.ParseEpoch(v)
		if err != nil {
			return nil, query.InvalidEpochErr("date_created")
		}
		dateCreated = epoch
	default:
		epoch, ok := integer(v)
		if !ok {
			return nil, query.InvalidEpochErr("date_created")
		}
		dateCreated = epoch
	}

	return &models.Reading{
		DeviceUUID:  deviceUUID,
		Type:        models.SensorType(sensorType),
		Value:       int(value),
		DateCreated: dateCreated,
	}, nil
}

// integer accepts JSON numbers without a fractional part.
func integer(v interface{}) (int64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Statistic is the single element of a statistic endpoint's response list.
type Statistic struct {
	Value interface{} `json:"value"`
}

type Quartiles struct {
	Quartile1 float64 `json:"quartile_1"`
	Quartile3 float64 `json:"quartile_3"`
}
