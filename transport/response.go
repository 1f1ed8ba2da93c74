package transport

import (
	"encoding/json"
	"net/http"

	"github.com/takatrack/waste-monitoring/constant"
	"github.com/takatrack/waste-monitoring/utils/errors"
)

// Response is the JSON envelope for every endpoint: a machine-readable code,
// a human-readable message and, on success, the payload.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	code := constant.ErrorTypeCode[constant.ErrInternal]
	message := constant.ErrorTypeMessage[constant.ErrInternal]
	status := constant.ErrorTypeHTTPCode[constant.ErrInternal]

	if customErr, ok := err.(errors.CustomError); ok {
		code = customErr.ErrorCode()
		message = customErr.Error()
		status = customErr.ErrorHTTPCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Code:    code,
		Message: message,
	})
}
