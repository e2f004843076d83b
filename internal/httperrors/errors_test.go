package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"deadline", fmt.Errorf("get user info: %w", context.DeadlineExceeded), Timeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "srm.example"}, DNS},
		{"refused", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), Refused},
		{"tls", errors.New("x509: certificate signed by unknown authority"), TLS},
		{"server", errors.New("login failed: status 503: upstream down"), Server},
		{"other", errors.New("EOF"), Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFormatNetworkErrorWraps(t *testing.T) {
	require.NoError(t, FormatNetworkError(nil, "signing in", ""))

	base := errors.New("EOF")
	err := FormatNetworkError(base, "signing in", "localhost:8080")
	require.ErrorIs(t, err, base)
}

func TestExtractHostFromURL(t *testing.T) {
	require.Equal(t, "srm.example:8443", ExtractHostFromURL("https://srm.example:8443/api"))
	require.Equal(t, "", ExtractHostFromURL("::bad"))
}
