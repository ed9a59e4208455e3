package errors

import (
	stderrs "errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want codes.Code
	}{
		{ErrorCodeValidation, codes.InvalidArgument},
		{ErrorCodeJSON, codes.InvalidArgument},
		{ErrorCodeInvalidArgument, codes.InvalidArgument},
		{ErrorCodeTooLarge, codes.InvalidArgument},
		{ErrorCodeNotFound, codes.NotFound},
		{ErrorCodePoolExhausted, codes.ResourceExhausted},
		{ErrorCodeUnavailable, codes.Unavailable},
		{ErrorCodeInference, codes.Internal},
		{ErrorCodeDB, codes.Internal},
		{ErrorCodePanic, codes.Internal},
		{ErrorCodeUnknown, codes.Internal},
	}
	for _, c := range cases {
		if got := GRPCCode(c.code); got != c.want {
			t.Fatalf("GRPCCode(%v) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestToGRPCRedaction(t *testing.T) {
	// client faults keep their message
	st, ok := status.FromError(ToGRPC(Validationf("review_text cannot be empty")))
	if !ok {
		t.Fatalf("ToGRPC should yield a status error")
	}
	if st.Code() != codes.InvalidArgument || st.Message() != "review_text cannot be empty" {
		t.Fatalf("client fault mangled: %v %q", st.Code(), st.Message())
	}

	// server faults are redacted
	st, _ = status.FromError(ToGRPC(PoolExhaustedf("pool saturated at 10 conns")))
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("code = %v", st.Code())
	}
	if st.Message() != "server busy, retry later" {
		t.Fatalf("internal detail leaked: %q", st.Message())
	}

	// foreign errors become Internal with generic text
	st, _ = status.FromError(ToGRPC(stderrs.New("pgx: conn busy")))
	if st.Code() != codes.Internal || st.Message() != "internal server error" {
		t.Fatalf("foreign error mapping: %v %q", st.Code(), st.Message())
	}

	if ToGRPC(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}
