package models

type SensorType string

const (
	Temperature SensorType = "temperature"
	Humidity    SensorType = "humidity"
)

var SensorTypes = []SensorType{
	Temperature,
	Humidity,
}

func (t SensorType) Valid() bool {
	for _, sensorType := range SensorTypes {
		if t == sensorType {
			return true
		}
	}
	return false
}

const (
	MinValue = 0
	MaxValue = 100
)

// Reading is a single row of the readings table. ID only keeps insertion
// order and is never exposed.
type Reading struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DeviceUUID  string     `gorm:"column:device_uuid;not null;index:idx_readings_lookup,priority:1" json:"device_uuid"`
	Type        SensorType `gorm:"column:type;not null;index:idx_readings_lookup,priority:2" json:"type"`
	Value       int        `gorm:"column:value;not null" json:"value"`
	DateCreated int64      `gorm:"column:date_created;not null;index:idx_readings_lookup,priority:3" json:"date_created"`
}

func (Reading) TableName() string {
	return "readings"
}
