// Command jwt-generator creates signed JWT tokens for exercising the
// rule-engine API during manual or scripted testing. It can also decode and
// verify an existing token.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

type options struct {
	clientID string
	role     string
	secret   string
	expiry   int
	decode   string
	format   string
	export   bool
	quiet    bool
}

func main() {
	var opts options

	flag.StringVar(&opts.clientID, "client-id", "test-client", "Client ID")
	flag.StringVar(&opts.role, "role", "admin", "User role (admin, viewer, executor)")
	flag.StringVar(&opts.secret, "secret", "dev-secret-key-change-in-production", "JWT secret key")
	flag.IntVar(&opts.expiry, "expiry", 24, "Token expiration time in hours")
	flag.IntVar(&opts.expiry, "expires", 24, "Token expiration time in hours (alias for -expiry)")
	flag.StringVar(&opts.decode, "decode", "", "Decode and verify an existing token")
	flag.StringVar(&opts.format, "format", "token", "Output format (token, json, curl)")
	flag.BoolVar(&opts.export, "export", false, "Print an export statement instead of the bare token")
	flag.BoolVar(&opts.quiet, "quiet", false, "Print the token only, suppressing decoration")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if !auth.ValidRole(opts.role) {
		return fmt.Errorf("invalid role %q (choose from admin, viewer, executor)", opts.role)
	}
	switch opts.format {
	case "token", "json", "curl":
	default:
		return fmt.Errorf("invalid format %q (choose from token, json, curl)", opts.format)
	}

	if opts.decode != "" {
		claims, err := auth.Verify(opts.decode, opts.secret)
		if err != nil {
			return err
		}
		out, err := formatDecoded(claims, opts.format)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	token, err := auth.Generate(opts.clientID, opts.role, opts.secret, time.Duration(opts.expiry)*time.Hour)
	if err != nil {
		return err
	}

	// Round-trip through the verifier so the printed claims are exactly what
	// the API will see.
	var claims *auth.Claims
	if opts.format == "json" {
		if claims, err = auth.Verify(token, opts.secret); err != nil {
			return err
		}
	}

	out, err := formatGenerated(token, claims, opts.format, opts.export, opts.quiet)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
