package quickpay

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const checksumField = "md5check"

// Order is part of the wire protocol: the gateway recomputes the digest in
// exactly this sequence.
var authorizeChecksumOrder = []string{
	"protocol", "msgtype", "merchant",
	"ordernumber", "amount", "currency",
	"autocapture", "cardnumber", "expirationdate",
	"cvd", "testmode", "apikey", "secret",
}

// calculateMD5 concatenates the named fields without a separator and returns
// the lowercase hex MD5 of the result. A field missing from fields is a bug in
// the caller and panics.
func calculateMD5(order []string, fields url.Values) string {
	var data strings.Builder

	for _, name := range order {
		values, ok := fields[name]
		if !ok || len(values) == 0 {
			panic(fmt.Sprintf("quickpay: checksum field %q is not set", name))
		}

		data.WriteString(values[0])
	}

	sum := md5.Sum([]byte(data.String()))
	return hex.EncodeToString(sum[:])
}

func sign(order []string, fields url.Values) {
	fields.Set(checksumField, calculateMD5(order, fields))
}
