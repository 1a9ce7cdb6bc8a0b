package http

import (
	"errors"
	"net/http"

	"github.com/ndmitry/go-note-keeper/internal/service"
	"github.com/ndmitry/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptySearchQuery:        http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,

	store.ErrAccountAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:      http.StatusNotFound,
	store.ErrNoteNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
