package handling

import (
	"ecomshop_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError maps service errors onto HTTP responses. Validation failures
// carry their field errors in the response data; everything unrecognized
// becomes a 500 without leaking internals.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(map[string]any{"errors": validationErr.Errors}),
			gecho.Send(),
		)
		return nil
	}

	switch {
	case errors.Is(err, lib.ErrMalformedBody):
		gecho.BadRequest(w, gecho.WithMessage(msg), gecho.Send())
		return nil
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
		return nil
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
		return nil
	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage(msg), gecho.Send())
		return nil
	case errors.Is(err, lib.ErrAuthNotConfigured):
		gecho.InternalServerError(w, gecho.Send())
		return nil
	case errors.Is(err, lib.ErrUploadNotConfigured):
		gecho.ServiceUnavailable(w, gecho.WithMessage(msg), gecho.Send())
		return nil
	case errors.Is(err, lib.ErrFileTooLarge), errors.Is(err, lib.ErrUnsupportedFileType):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return nil
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
	gecho.InternalServerError(w, gecho.Send())
	return nil
}
