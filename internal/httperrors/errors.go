// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns transport failures into messages a user can act on.
package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Class is the broad cause of a network failure.
type Class int

const (
	Generic Class = iota
	Timeout
	DNS
	Refused
	TLS
	Server
)

// Classify inspects err and returns its Class.
func Classify(err error) Class {
	switch {
	case err == nil:
		return Generic
	case isTimeoutError(err):
		return Timeout
	case isDNSError(err):
		return DNS
	case isConnectionRefusedError(err):
		return Refused
	case isSSLError(err):
		return TLS
	case isServerError(err.Error()):
		return Server
	}
	return Generic
}

// FormatNetworkError prints a troubleshooting message for err and returns
// it wrapped. what describes the failed action ("signing in"); host names
// the server.
func FormatNetworkError(err error, what, host string) error {
	if err == nil {
		return nil
	}
	if host == "" {
		host = "the SRM server"
	}

	switch Classify(err) {
	case Timeout:
		showTimeoutError(what)
	case DNS:
		showDNSError(what, host)
	case Refused:
		showConnectionRefusedError(what, host)
	case TLS:
		showSSLError(what)
	case Server:
		showServerError(what)
	default:
		showGenericError(what, host, err.Error())
	}
	return fmt.Errorf("network error: %w", err)
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError matches the "status 5xx" text produced by the backend client.
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	for _, s := range []string{"status 500", "status 502", "status 503", "status 504",
		"internal server error", "bad gateway", "service unavailable", "gateway timeout"} {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

func showTimeoutError(what string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", what)
	pterm.Println()
	pterm.Println("The server took too long to respond. Check your connection or")
	pterm.Println("raise request_timeout in the srm config, then try again.")
	pterm.Println()
}

func showDNSError(what, host string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", what)
	pterm.Println()
	pterm.Printf("Unable to look up %s. Check base_url in the srm config\n", host)
	pterm.Println("(or SRM_BASE_URL) and your DNS settings.")
	pterm.Println()
}

func showConnectionRefusedError(what, host string) {
	pterm.Printf("🚫 Connection refused while %s\n", what)
	pterm.Println()
	pterm.Printf("%s is not accepting connections. Is the SRM backend running\n", host)
	pterm.Println("and is the port in base_url correct?")
	pterm.Println()
}

func showSSLError(what string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", what)
	pterm.Println()
	pterm.Println("Cannot establish an HTTPS connection. Check the server certificate,")
	pterm.Println("any proxy in between, and your system clock.")
	pterm.Println()
}

func showServerError(what string) {
	pterm.Printf("⚠️  Server error while %s\n", what)
	pterm.Println()
	pterm.Println("The SRM backend failed to handle the request. Try again shortly;")
	pterm.Println("run with --verbose to see the response.")
	pterm.Println()
}

func showGenericError(what, host, details string) {
	pterm.Printf("❌ Cannot reach %s while %s\n", host, what)
	pterm.Println()
	if details != "" {
		if len(details) > 100 {
			details = details[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", details)
		pterm.Println()
	}
}

// ExtractHostFromURL returns the host of urlStr, or "" when it has none.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
