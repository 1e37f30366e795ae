package quickpay

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	msgAuthorize = "authorize"
	msgCapture   = "capture"
	msgCancel    = "cancel"
	msgStatus    = "status"
)

type sendParams struct {
	HttpCode int
	MsgType  string
	Fields   url.Values
	Headers  map[string]string
}

// AuthorizeReq reserves Amount on the card. Only merchants with a full PCI
// certification may authorize through the API.
type AuthorizeReq struct {
	OrderNumber    string
	Amount         int64 // smallest currency unit, 1 EUR = 100
	Currency       string
	CardNumber     string
	ExpirationDate string // YYMM
	CVD            string
	AutoCapture    bool
	TestMode       bool
}

type CaptureReq struct {
	Transaction string
	Amount      int64
	Finalize    bool
}

type cancelReq struct {
	Transaction string
}

type statusReq struct {
	Transaction string
}

func (r AuthorizeReq) fields(c *Config) url.Values {
	v := url.Values{}
	v.Set("protocol", c.Protocol)
	v.Set("msgtype", msgAuthorize)
	v.Set("ordernumber", r.OrderNumber)
	v.Set("amount", strconv.FormatInt(r.Amount, 10))
	v.Set("currency", r.Currency)
	v.Set("cardnumber", r.CardNumber)
	v.Set("expirationdate", r.ExpirationDate)
	v.Set("cvd", r.CVD)
	v.Set("autocapture", flag(r.AutoCapture))
	v.Set("merchant", c.Merchant)
	v.Set("apikey", c.APIKey)
	v.Set("secret", c.Secret)
	v.Set("testmode", flag(r.TestMode))

	return v
}

func (r CaptureReq) fields() url.Values {
	v := url.Values{}
	v.Set("msgtype", msgCapture)
	v.Set("transaction", r.Transaction)
	v.Set("amount", strconv.FormatInt(r.Amount, 10))
	v.Set("finalize", flag(r.Finalize))

	return v
}

func (r cancelReq) fields() url.Values {
	v := url.Values{}
	v.Set("msgtype", msgCancel)
	v.Set("transaction", r.Transaction)

	return v
}

func (r statusReq) fields() url.Values {
	v := url.Values{}
	v.Set("msgtype", msgStatus)
	v.Set("transaction", r.Transaction)

	return v
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Response is the parsed <response> document of one exchange.
type Response struct {
	StatusCode int
	Header     http.Header

	QPStat    string
	QPStatMsg string
	ChStat    string
	ChStatMsg string

	// Fields holds every leaf element of <response>, qpstat included.
	Fields map[string]string
	// History is filled by status queries, one entry per <history> block.
	History []map[string]string
}

func (r *Response) Get(name string) string {
	return r.Fields[name]
}

func (r *Response) Transaction() string {
	return r.Fields["transaction"]
}

func (r *Response) State() string {
	return r.Fields["state"]
}

func (r *Response) Amount() (int64, error) {
	return strconv.ParseInt(r.Fields["amount"], 10, 64)
}
