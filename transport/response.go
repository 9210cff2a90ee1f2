package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	validatorx "github.com/muhammadheryan/roadside-assistance/utils/validator"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

// writeError renders a CustomError as-is; anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Kind:    string(ce.Kind()),
		Message: ce.Error(),
	})
}

// decodeAndValidate reads a JSON body into dst. With optional set an empty body is accepted.
func decodeAndValidate(r *http.Request, dst interface{}, optional bool) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if !(optional && stderrors.Is(err, io.EOF)) {
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid request body")
		}
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid id")
	}
	return id, nil
}
