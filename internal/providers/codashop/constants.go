package codashop

import "time"

const (
	defaultBaseURL     = "https://order-sg.codashop.com"
	initPaymentPath    = "/initPayment.action"
	defaultHTTPTimeout = 10 * time.Second

	// The storefront rejects requests that do not carry its own origin.
	originHeader  = "https://www.codashop.com"
	refererHeader = "https://www.codashop.com/"

	shopLang = "id_ID"
)
