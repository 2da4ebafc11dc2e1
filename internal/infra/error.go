package infra

import (
	"errors"
	"log/slog"

	"campaign-engine/internal/pkg/errs"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	slogger.Error("Gateway error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Backend/transport error kinds
const (
	KindNotFound     GatewayErrorKind = "NOT_FOUND"
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"
	KindBadResponse  GatewayErrorKind = "BAD_RESPONSE"
	KindUnavailable  GatewayErrorKind = "UNAVAILABLE"
)
