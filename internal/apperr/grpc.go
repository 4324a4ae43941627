package apperr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (k Kind) Code() codes.Code {
	switch k {
	case KindValidation:
		return codes.InvalidArgument
	case KindConflict, KindReferential:
		return codes.FailedPrecondition
	case KindNotFound:
		return codes.NotFound
	case KindUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status error. Internal failures do not
// leak their cause to the caller.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}
	if e.Kind == KindInternal {
		return status.Error(codes.Internal, e.Message)
	}
	return status.Error(e.Kind.Code(), e.Message)
}
