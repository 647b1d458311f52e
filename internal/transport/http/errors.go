package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed      = "method_not_allowed"
	codeNotFound              = "not_found"
	codeInvalidRequestBody    = "invalid_request_body"
	codeInvalidDate           = "invalid_date"
	codeInvalidID             = "invalid_id"
	codeTitleRequired         = "title_required"
	codeDescriptionRequired   = "description_required"
	codeVenueRequired         = "venue_required"
	codeInvalidPrice          = "invalid_price"
	codeInvalidCapacity       = "invalid_capacity"
	codeInvalidQuantity       = "invalid_quantity"
	codeBuyerNameRequired     = "buyer_name_required"
	codeBuyerEmailRequired    = "buyer_email_required"
	codeEventNotFound         = "event_not_found"
	codeInsufficientInventory = "insufficient_inventory"
	codeForbidden             = "forbidden"
	codeInternalError         = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
