package errors

// gRPC status mapping, the RPC twin of HTTPStatusCode

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode turns an ErrorCode into a grpc status code
func GRPCCode(c ErrorCode) codes.Code {
	switch c {
	case ErrorCodeValidation, ErrorCodeJSON, ErrorCodeInvalidArgument, ErrorCodeTooLarge:
		return codes.InvalidArgument
	case ErrorCodeNotFound:
		return codes.NotFound
	case ErrorCodePoolExhausted:
		return codes.ResourceExhausted
	case ErrorCodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// GRPCStatus maps any error to a grpc *status.Status with a caller-safe
// detail message (client faults keep their message, the rest is generic)
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	w := Public(err)
	return status.New(GRPCCode(w.Code), w.Message)
}

// ToGRPC converts any error to a grpc status error
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	return GRPCStatus(err).Err()
}
