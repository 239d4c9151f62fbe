package request

import "playroom-booking/internal/domain/payment"

// PaymentReturnQuery is what the gateway appends to the return redirect.
type PaymentReturnQuery struct {
	OrderID           string `form:"orderId" binding:"required"`
	TransactionStatus string `form:"transactionStatus" binding:"required"`
}

func (q *PaymentReturnQuery) ToDomain() payment.Signal {
	return payment.Signal{OrderID: q.OrderID, TransactionStatus: q.TransactionStatus, Source: payment.SourceRedirect}
}

// PaymentNotificationRequest is the embedded payment frame's completion message,
// relayed by the client.
type PaymentNotificationRequest struct {
	OrderID           string `json:"orderId" binding:"required"`
	TransactionStatus string `json:"transactionStatus" binding:"required"`
}

func (r *PaymentNotificationRequest) ToDomain() payment.Signal {
	return payment.Signal{OrderID: r.OrderID, TransactionStatus: r.TransactionStatus, Source: payment.SourceNotification}
}
