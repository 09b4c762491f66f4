package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chinmay1088/cryptoapis/api"
)

const spinnerInterval = 100 * time.Millisecond

// request runs fn behind a spinner and prints the JSON it returns
func request(cmd *cobra.Command, description string, fn func(ctx context.Context) (*api.Response, error)) error {
	stop := startSpinner(cmd, description)
	resp, err := fn(cmd.Context())
	stop()
	if err != nil {
		return fmt.Errorf("%s: %w", description, err)
	}
	return printResponse(cmd, resp)
}

// startSpinner shows a spinner on stderr while a request is in flight. It only
// draws on an interactive terminal and never in quiet mode.
func startSpinner(cmd *cobra.Command, description string) func() {
	if quietFlag || cmd.ErrOrStderr() != os.Stderr || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"...[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		_ = bar.Finish()
	}
}

// printResponse writes the indented payload of resp. Bodies without a v1
// envelope are printed whole.
func printResponse(cmd *cobra.Command, resp *api.Response) error {
	out := cmd.OutOrStdout()
	if len(resp.Payload) == 0 {
		fmt.Fprintln(out, color.YellowString("empty response (status %d)", resp.Status))
		return nil
	}

	body := []byte(resp.Payload)
	var payload json.RawMessage
	if err := resp.DecodePayload(&payload); err == nil {
		body = payload
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}

// readPassword prompts for a hidden password, twice when confirm is set
func readPassword(cmd *cobra.Command, prompt string, confirm bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot prompt for a password: stdin is not a terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	if !confirm {
		return string(password), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Confirm password: ")
	again, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if string(password) != string(again) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(password), nil
}

// splitPair splits "address=value" at the last '='
func splitPair(pair string) (string, string, error) {
	i := strings.LastIndex(pair, "=")
	if i <= 0 || i == len(pair)-1 {
		return "", "", fmt.Errorf("expected address=value, got %q", pair)
	}
	return strings.TrimSpace(pair[:i]), strings.TrimSpace(pair[i+1:]), nil
}

// parseHeight reports whether ref is a block height rather than a hash
func parseHeight(ref string) (int64, bool) {
	height, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}
