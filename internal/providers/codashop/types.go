package codashop

const providerName = "codashop"

// InitPaymentResponse is the loosely-typed body returned by the payment
// initiation endpoint. Fields are optional by contract; nothing outside this
// package and the lookup normalizer should depend on its shape.
type InitPaymentResponse struct {
	Success            bool                `json:"success"`
	ErrorCode          string              `json:"errorCode,omitempty"`
	ConfirmationFields *ConfirmationFields `json:"confirmationFields,omitempty"`
	User               *UserFields         `json:"user,omitempty"`
}

// ConfirmationFields carries the product and account details echoed back on
// a successful initiation.
type ConfirmationFields struct {
	ProductName string `json:"productName"`
	Username    string `json:"username"`
}

// UserFields echoes the submitted account identifiers.
type UserFields struct {
	UserID string `json:"userId"`
	ZoneID string `json:"zoneId"`
}
