package booking

import (
	"strconv"
	"strings"
	"time"
)

const (
	bookingPrefix    = "VE"
	specialPrefix    = "REF"
	membershipPrefix = "MEM"
)

// reference builds the synthetic identifiers handed back by the intake
// endpoints: a prefix followed by the upper-cased base36 epoch millis.
func reference(prefix string, at time.Time) string {
	return prefix + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}

func gatewayOrderID(at time.Time) string {
	return "order_" + strconv.FormatInt(at.UnixMilli(), 10)
}
