package bookingapi

import (
	"context"
	"net/http"

	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/usecase/shared"
)

type receiptDTO struct {
	InvoiceNumber string `json:"invoiceNumber"`
	RedirectURL   string `json:"redirectUrl"`
}

func (c *Client) SubmitNormal(ctx context.Context, req submission.NormalBooking) (*shared.BookingReceipt, error) {
	return c.submit(ctx, "/bookings", req)
}

func (c *Client) SubmitReward(ctx context.Context, req submission.RewardBooking) (*shared.BookingReceipt, error) {
	return c.submit(ctx, "/bookings/reward", req)
}

func (c *Client) SubmitOTS(ctx context.Context, req submission.OTSBooking) (*shared.BookingReceipt, error) {
	return c.submit(ctx, "/bookings/ots", req)
}

func (c *Client) submit(ctx context.Context, path string, req any) (*shared.BookingReceipt, error) {
	var dto receiptDTO
	if err := c.post(ctx, path, req, &dto); err != nil {
		return nil, err
	}
	if dto.InvoiceNumber == "" {
		return nil, wrapUpstreamErr(c.logger, KindFailure, http.StatusOK, "booking response without invoice number", nil)
	}
	return &shared.BookingReceipt{InvoiceNumber: dto.InvoiceNumber, RedirectURL: dto.RedirectURL}, nil
}
