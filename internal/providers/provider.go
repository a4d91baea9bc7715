package providers

import (
	"context"

	"ign-lookup-service/internal/providers/codashop"
)

// LookupClient defines how a payment initiation is submitted upstream.
// Implementations return an error only for transport failures, timeouts, or
// unexpected statuses; business negatives come back inside the response.
type LookupClient interface {
	InitPayment(ctx context.Context, order codashop.Order) (*codashop.InitPaymentResponse, error)
}
