package filter

import (
	"strings"

	"gorm.io/gorm"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/models"
)

const (
	MsgMissingDevice = "Please provide a device uuid"
	MsgInvalidType   = `Please enter values "temperature" or "humidity" for "type"`
)

type RangeKind int

const (
	Unbounded RangeKind = iota
	StartOnly
	EndOnly
	Between
)

// Filter selects the readings of one device. An empty SensorType matches
// every type and nil bounds leave that side of the range open.
type Filter struct {
	DeviceUUID string
	SensorType models.SensorType
	Start      *int64
	End        *int64
}

func Build(deviceUUID, sensorType string, start, end *int64) (Filter, error) {
	if strings.TrimSpace(deviceUUID) == "" {
		return Filter{}, commonerrors.ValidationErr("device_uuid", MsgMissingDevice)
	}

	t := models.SensorType(sensorType)
	if sensorType != "" && !t.Valid() {
		return Filter{}, commonerrors.ValidationErr("type", MsgInvalidType)
	}

	return Filter{
		DeviceUUID: deviceUUID,
		SensorType: t,
		Start:      start,
		End:        end,
	}, nil
}

func (f Filter) Range() RangeKind {
	switch {
	case f.Start != nil && f.End != nil:
		return Between
	case f.Start != nil:
		return StartOnly
	case f.End != nil:
		return EndOnly
	default:
		return Unbounded
	}
}

// Scope applies the filter as bound predicates on the readings table.
func (f Filter) Scope(tx *gorm.DB) *gorm.DB {
	tx = tx.Table(models.Reading{}.TableName()).Where("device_uuid = ?", f.DeviceUUID)
	if f.SensorType != "" {
		tx = tx.Where("type = ?", string(f.SensorType))
	}

	switch f.Range() {
	case Between:
		tx = tx.Where("date_created BETWEEN ? AND ?", *f.Start, *f.End)
	case StartOnly:
		tx = tx.Where("date_created >= ?", *f.Start)
	case EndOnly:
		tx = tx.Where("date_created <= ?", *f.End)
	}
	return tx
}
