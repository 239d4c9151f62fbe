package response

import (
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/queries"
)

type StartDraftResponse struct {
	SessionID string             `json:"sessionId"`
	Draft     *queries.DraftView `json:"draft"`
}

// MutationResponse reports what a setter touched. Applied is false when the input
// was rejected and the draft did not move.
type MutationResponse struct {
	Applied bool               `json:"applied"`
	Changed []string           `json:"changed"`
	Draft   *queries.DraftView `json:"draft"`
}

func NewMutationResponse(c draft.Change, view *queries.DraftView) *MutationResponse {
	return &MutationResponse{Applied: !c.IsZero(), Changed: c.Names(), Draft: view}
}

type PromoResponse struct {
	Outcome string             `json:"outcome"`
	Draft   *queries.DraftView `json:"draft"`
}

func NewPromoResponse(o promo.Outcome, view *queries.DraftView) *PromoResponse {
	return &PromoResponse{Outcome: o.String(), Draft: view}
}

type RewardResponse struct {
	RedirectTarget string             `json:"redirectTarget,omitempty"`
	Merged         bool               `json:"merged"`
	Draft          *queries.DraftView `json:"draft"`
}

func NewRewardResponse(r *commands.RewardResult, view *queries.DraftView) *RewardResponse {
	return &RewardResponse{RedirectTarget: r.RedirectTarget, Merged: r.Merged, Draft: view}
}

type SubmitResponse struct {
	Outcome         string `json:"outcome"`
	Mode            string `json:"mode"`
	InvoiceNumber   string `json:"invoiceNumber"`
	RedirectURL     string `json:"redirectUrl,omitempty"`
	RedirectDelayMs int64  `json:"redirectDelayMs,omitempty"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Outcome:         r.Outcome,
		Mode:            string(r.Mode),
		InvoiceNumber:   r.InvoiceNumber,
		RedirectURL:     r.RedirectURL,
		RedirectDelayMs: r.RedirectDelay.Milliseconds(),
	}
}

type SignalResponse struct {
	State         string `json:"state"`
	Outcome       string `json:"outcome"`
	Applied       bool   `json:"applied"`
	InvoiceNumber string `json:"invoiceNumber"`
}

func FromSignalResult(r *commands.SignalResult) *SignalResponse {
	return &SignalResponse{
		State:         string(r.State),
		Outcome:       r.Outcome,
		Applied:       r.Applied,
		InvoiceNumber: r.InvoiceNumber,
	}
}
