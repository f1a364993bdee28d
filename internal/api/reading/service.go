package reading

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"readings-api-server/internal/api/common/query"
	"readings-api-server/internal/api/common/stats"
	"readings-api-server/internal/models"
)

const (
	StatMin    = "min"
	StatMax    = "max"
	StatMean   = "mean"
	StatMedian = "median"
	StatMode   = "mode"
)

type reducer func(values []int) (interface{}, error)

var reducers = map[string]reducer{
	StatMin: func(values []int) (interface{}, error) {
		return stats.Min(values)
	},
	StatMax: func(values []int) (interface{}, error) {
		return stats.Max(values)
	},
	StatMean: func(values []int) (interface{}, error) {
		return stats.Mean(values)
	},
	StatMedian: func(values []int) (interface{}, error) {
		return stats.Median(values)
	},
	StatMode: func(values []int) (interface{}, error) {
		return stats.Mode(values)
	},
}

func errUnknownStatistic(name string) error {
	return errors.Errorf("unknown statistic %q", name)
}

type readingService struct {
	repository ReadingRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ ReadingService = (*readingService)(nil)

func NewReadingService(r ReadingRepository, logger *zap.Logger) ReadingService {
	return &readingService{
		repository: r,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *readingService) AddReading(ctx context.Context, deviceUUID string, req CreateReadingRequest) (*models.Reading, error) {
	reading, err := req.Validate(deviceUUID, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repository.Insert(ctx, reading); err != nil {
		s.logger.Error("failed to insert reading",
			zap.String("device_uuid", deviceUUID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("reading stored",
		zap.String("device_uuid", reading.DeviceUUID),
		zap.String("type", string(reading.Type)),
		zap.Int("value", reading.Value),
		zap.Int64("date_created", reading.DateCreated))
	return reading, nil
}

func (s *readingService) GetReadings(ctx context.Context, query query.Query) ([]models.Reading, error) {
	s.logFilter("get readings", query)

	readings, err := s.repository.Scan(ctx, query.Filter)
	if err != nil {
		s.logger.Error("failed to get readings from database", zap.Error(err))
		return nil, err
	}
	return readings, nil
}

func (s *readingService) GetStatistic(ctx context.Context, query query.Query, statistic string) (*Statistic, error) {
	s.logFilter("get "+statistic, query)

	reduce, exist := reducers[statistic]
	if !exist {
		return nil, errUnknownStatistic(statistic)
	}

	values, err := s.repository.Values(ctx, query.Filter)
	if err != nil {
		s.logger.Error("failed to get values from database", zap.Error(err))
		return nil, err
	}

	value, err := reduce(values)
	if err != nil {
		return nil, err
	}
	return &Statistic{Value: value}, nil
}

func (s *readingService) GetQuartiles(ctx context.Context, query query.Query) (*Quartiles, error) {
	s.logFilter("get quartiles", query)

	values, err := s.repository.Values(ctx, query.Filter)
	if err != nil {
		s.logger.Error("failed to get values from database", zap.Error(err))
		return nil, err
	}

	q1, q3, err := stats.Quartiles(values)
	if err != nil {
		return nil, err
	}
	return &Quartiles{
		Quartile1: q1,
		Quartile3: q3,
	}, nil
}

func (s *readingService) logFilter(msg string, query query.Query) {
	fields := []zap.Field{
		zap.String("id", query.ID),
		zap.String("device_uuid", query.Filter.DeviceUUID),
		zap.String("type", string(query.Filter.SensorType)),
	}
	if query.Filter.Start != nil {
		fields = append(fields, zap.Int64("start", *query.Filter.Start))
	}
	if query.Filter.End != nil {
		fields = append(fields, zap.Int64("end", *query.Filter.End))
	}
	s.logger.Debug(msg, fields...)
}
