package rest

import (
	"errors"

	"github.com/wartakita/warta-admin/internal/warta"
)

func asValidationError(err error) (*warta.ValidationError, bool) {
	var ve *warta.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func isNotFound(err error) bool {
	var nf *warta.NotFoundError
	return errors.As(err, &nf)
}
