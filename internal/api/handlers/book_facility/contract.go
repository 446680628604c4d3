package book_facility

import (
	"context"

	bookFacility "github.com/m04kA/SMC-FacilityBooking/internal/usecase/book_facility"
)

type BookFacilityUseCase interface {
	Execute(ctx context.Context, req *bookFacility.Request) (*bookFacility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
