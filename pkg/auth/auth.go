package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserSubjectHeader = "X-User-Subject"
	XUserNameHeader    = "X-User-Name"
)

type authKey int

const (
	subjectKey authKey = iota + 1
	nameKey
)

var ErrNoIdentity = errors.New("no identity in context")

// SetAuthContext stores the gateway supplied identity.
func SetAuthContext(ctx context.Context, subject, name string) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, nameKey, name)
}

func GetSubject(ctx context.Context) (string, error) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", ErrNoIdentity
	}
	return subject, nil
}

func GetName(ctx context.Context) string {
	name, _ := ctx.Value(nameKey).(string)
	return name
}
