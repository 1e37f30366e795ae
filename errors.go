package quickpay

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	// KindTransport is a non-success HTTP status; Code holds it.
	KindTransport ErrorKind = iota + 1
	// KindApplication is a 200/201 answer whose qpstat is not "000".
	KindApplication
	// KindParse is a 200/201 answer whose body is not a QuickPay document.
	KindParse
)

const (
	QPStatOK = "000"

	errorLabel = "QuickPay error: %s %s"
)

var statusLabels = map[int]string{
	http.StatusNoContent:           "No content",
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

// Error is returned for every failed exchange other than a network failure.
type Error struct {
	Kind    ErrorKind
	Code    int    // HTTP status, transport errors only
	QPStat  string // application errors only
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func transportError(status int) *Error {
	label, ok := statusLabels[status]
	if !ok {
		label = http.StatusText(status)
	}
	if label == "" {
		label = "Unexpected status"
	}

	return &Error{
		Kind:    KindTransport,
		Code:    status,
		Message: fmt.Sprintf(errorLabel, fmt.Sprint(status), label),
	}
}

func applicationError(res *Response) *Error {
	message := res.QPStatMsg
	if res.ChStat != "" {
		message += " [" + res.ChStat + "]: " + res.ChStatMsg
	}

	return &Error{
		Kind:    KindApplication,
		QPStat:  res.QPStat,
		Message: fmt.Sprintf(errorLabel, res.QPStat, message),
	}
}

func IsUnauthorized(err error) bool {
	var qpErr *Error
	if errors.As(err, &qpErr) {
		return qpErr.Kind == KindTransport && qpErr.Code == http.StatusUnauthorized
	}
	return false
}
