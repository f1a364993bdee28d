package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

func TimeParser(datestr string) (time.Time, error) {
	t, err := dateparse.ParseAny(datestr)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ParseEpoch reads an epoch timestamp in seconds. Anything that is not an
// integer is handed to dateparse and converted to epoch seconds.
func ParseEpoch(str string) (int64, error) {
	str = strings.TrimSpace(str)
	if epoch, err := strconv.ParseInt(str, 10, 64); err == nil {
		return epoch, nil
	}

	t, err := TimeParser(str)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
