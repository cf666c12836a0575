package inventory

import (
	"fmt"
	"strconv"
)

// FormatBitrate renders a bitrate for display. The scale is chosen from the
// number of characters in value rather than its magnitude: 4-6 characters
// are shown in kb/s, 7-9 in mb/s, anything else in bps. The scaled number is
// printed with three decimals and cut to five characters, so "15000" becomes
// "15.00 kb/s". Values that do not parse as numbers render as "".
func FormatBitrate(value string) string {
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}

	suffix := "bps"
	switch n := len(value); {
	case n >= 4 && n <= 6:
		number /= 1000
		suffix = "kb/s"
	case n >= 7 && n <= 9:
		number /= 1000000
		suffix = "mb/s"
	}

	formatted := fmt.Sprintf("%.3f", number)
	if len(formatted) > 5 {
		formatted = formatted[:5]
	}
	return formatted + " " + suffix
}
