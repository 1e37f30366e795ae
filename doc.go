// Package quickpay provides a client for the QuickPay merchant API
// (protocol 7).
//
// Requests are sent as form-encoded POSTs to https://secure.quickpay.dk/api
// and answered with an XML <response> document.
//
// # Authentication
//
// Authorize requests carry the merchant id, API key and secret as form
// fields, signed by an md5check computed over a fixed field order. Capture,
// cancel and status requests are not signed.
//
// # Basic Usage
//
//	svc := quickpay.New(quickpay.NewConfig(merchant, secret, apiKey),
//	    quickpay.WithLogger(logger),
//	)
//
//	res, err := svc.Authorize(ctx, quickpay.AuthorizeReq{
//	    OrderNumber:    "444335566234234",
//	    Amount:         100,
//	    Currency:       "DKK",
//	    CardNumber:     "4571000000000001",
//	    ExpirationDate: "1609",
//	    CVD:            "123",
//	    TestMode:       true,
//	})
//
//	_, err = svc.Capture(ctx, quickpay.CaptureReq{
//	    Transaction: res.Transaction(),
//	    Amount:      100,
//	})
//
// # Error Handling
//
// Failed exchanges are returned as *Error. Kind tells a transport status
// (Code) apart from a QuickPay status (QPStat):
//
//	res, err := svc.Capture(ctx, req)
//	var qpErr *quickpay.Error
//	if errors.As(err, &qpErr) {
//	    switch qpErr.Kind {
//	    case quickpay.KindTransport:
//	        // qpErr.Code is the HTTP status
//	    case quickpay.KindApplication:
//	        // qpErr.QPStat is the QuickPay status code
//	    }
//	}
//
// Network failures are returned wrapped, as they come from net/http.
package quickpay
