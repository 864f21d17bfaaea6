package response

import (
	"vouch-backend/internal/usecase/commands"
	"vouch-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type StartVouchResponse struct {
	Message        string `json:"message"`
	AlreadyPending bool   `json:"already_pending"`
}

func FromStartResult(r *commands.StartResult) *StartVouchResponse {
	msg := "Vouch attempt started"
	if r.AlreadyPending {
		msg = "Vouch attempt already in progress"
	}
	return &StartVouchResponse{Message: msg, AlreadyPending: r.AlreadyPending}
}

type StopVouchResponse struct {
	Status   string  `json:"status"`
	PopToken *string `json:"pop_token,omitempty"`
}

func FromStopResult(r *commands.StopResult) *StopVouchResponse {
	return &StopVouchResponse{Status: r.Status, PopToken: r.PopToken}
}

type VouchStatusResponse struct {
	Status           string   `json:"status"`
	PopToken         *string  `json:"pop_token,omitempty"`
	SecondsRemaining *float64 `json:"seconds_remaining,omitempty"`
	DwellTimeTotal   *float64 `json:"dwell_time_total,omitempty"`
}

func FromVouchStatusView(v *queries.VouchStatusView) *VouchStatusResponse {
	var resp VouchStatusResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
