package format

import "time"

// excelEpoch is the serial date epoch: serial day 0 renders as 1899-12-30.
// Days are counted on the plain Gregorian calendar, so serials from 61
// (1900-03-01) onward agree with Excel's 1900 date system; there is no
// fictitious 1900-02-29, so serials 1-60 render one day earlier than in
// Excel (serial 60 is 1900-02-28). See DESIGN.md Open Question 1.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialToTime converts an Excel-style serial date/time value to a Go
// time.Time in UTC. Integer part is a day count from excelEpoch;
// fractional part is a fraction of a 24h day.
func serialToTime(serial float64) time.Time {
	days := int64(serial)
	frac := serial - float64(days)
	t := excelEpoch.AddDate(0, 0, int(days))
	secs := frac * 86400
	return t.Add(time.Duration(secs*float64(time.Second) + 0.5))
}

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}
