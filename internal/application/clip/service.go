// Package clip implements the clipboard copy command: resolve an entry
// attribute (or its current TOTP), place it on the system clipboard, and
// optionally clear it again after a countdown.
package clip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/keyclip-go/internal/domain"
	"github.com/doeshing/keyclip-go/internal/ports"
)

// DefaultAttribute is copied when the caller selects nothing explicitly.
const DefaultAttribute = "password"

// Service runs one clip invocation end-to-end. Out and Err are the command's
// output and error streams; all user-facing messages go through them.
type Service struct {
	Store     ports.EntryStore
	Clipboard ports.Clipboard
	Sleeper   ports.Sleeper
	Logger    ports.Logger
	Out       io.Writer
	Err       io.Writer
	// Now supplies the instant TOTP codes are generated for.
	// Defaults to time.Now.
	Now func() time.Time
}

// Request carries the parsed command line for one invocation.
type Request struct {
	EntryPath string
	// Attribute is the requested attribute name, already defaulted to
	// DefaultAttribute when the flag was not given. AttributeSet records
	// whether the user set it explicitly, which matters for the
	// mutual-exclusion check against TotpRequested.
	Attribute     string
	AttributeSet  bool
	TotpRequested bool
	// RawTimeout is the optional positional timeout argument, unparsed.
	// Empty means no auto-clear.
	RawTimeout string
	Quiet      bool
}

// Run executes the command and returns its process exit status. Messages are
// written to Out/Err along the way; a non-zero return carries no pending
// message of its own.
func (s *Service) Run(ctx context.Context, req Request) int {
	timeoutSeconds, err := parseTimeout(req.RawTimeout)
	if err != nil {
		fmt.Fprintf(s.Err, "Invalid timeout value %s.\n", req.RawTimeout)
		return 1
	}

	if req.AttributeSet && req.TotpRequested {
		fmt.Fprintln(s.Err, "ERROR: Please specify one of --attribute or --totp, not both.")
		return 1
	}

	entry, err := s.Store.FindEntryByPath(ctx, req.EntryPath)
	if err != nil {
		fmt.Fprintln(s.Err, "error:", err)
		return 1
	}
	if entry == nil {
		fmt.Fprintf(s.Err, "Entry %s not found.\n", req.EntryPath)
		return 1
	}

	resolvedKey, value, err := resolve(entry, req.Attribute, req.TotpRequested, s.now())
	if err != nil {
		return s.reportResolveFailure(req.EntryPath, err)
	}

	return s.copyAndClear(value, resolvedKey, timeoutSeconds, req.Quiet)
}

// parseTimeout validates the optional timeout argument. Empty means no
// countdown; anything else must be an integer greater than zero.
func parseTimeout(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, &domain.InvalidTimeoutError{Raw: raw}
	}
	return seconds, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolve finds the unique attribute (or the TOTP pseudo-attribute) to copy.
// It is never called with both an explicit attribute and the TOTP flag; the
// mutual-exclusion check runs first.
func resolve(entry *domain.Entry, requested string, totpRequested bool, now time.Time) (key, value string, err error) {
	if totpRequested || requested == "totp" {
		if !entry.HasTotp() {
			return "", "", domain.ErrNoTotp
		}
		code, err := entry.TotpAt(now)
		if err != nil {
			return "", "", err
		}
		return "totp", code, nil
	}

	matches := domain.FindAttributes(entry.Attributes, requested)
	switch len(matches) {
	case 0:
		return "", "", &domain.AttributeNotFoundError{Name: requested}
	case 1:
		return matches[0], entry.Attributes.Value(matches[0]), nil
	default:
		return "", "", &domain.AmbiguousAttributeError{Name: requested, Matches: matches}
	}
}

// reportResolveFailure writes the failure message to the proper stream.
// AttributeNotFound goes to the output stream, everything else to the error
// stream; both exit non-zero.
func (s *Service) reportResolveFailure(entryPath string, err error) int {
	var notFound *domain.AttributeNotFoundError
	var ambiguous *domain.AmbiguousAttributeError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(s.Out, "Attribute %q not found.\n", notFound.Name)
	case errors.As(err, &ambiguous):
		fmt.Fprintf(s.Err, "ERROR: attribute %s is ambiguous, it matches %s.\n",
			ambiguous.Name, strings.Join(ambiguous.Matches, ", "))
	case errors.Is(err, domain.ErrNoTotp):
		fmt.Fprintf(s.Err, "Entry with path %s has no TOTP set up.\n", entryPath)
	default:
		fmt.Fprintln(s.Err, "error:", err)
	}
	return 1
}

// copyAndClear writes the secret to the clipboard and, when a timeout was
// given, counts down once per second on a single rewritten status line before
// overwriting the clipboard with an empty value.
func (s *Service) copyAndClear(value, resolvedKey string, timeoutSeconds int, quiet bool) int {
	if err := s.Clipboard.Copy(value); err != nil {
		return clipboardExitCode(err)
	}

	if !quiet {
		fmt.Fprintf(s.Out, "Entry's %q attribute copied to the clipboard!\n", resolvedKey)
	}

	if timeoutSeconds == 0 {
		// No auto-clear requested; the secret stays on the clipboard.
		return 0
	}

	lastLine := ""
	for remaining := timeoutSeconds; remaining > 0; remaining-- {
		eraseLine(s.Out, len(lastLine))
		lastLine = countdownLine(remaining)
		fmt.Fprint(s.Out, lastLine)
		s.Sleeper.Sleep(time.Second)
	}

	if err := s.Clipboard.Copy(""); err != nil && s.Logger != nil {
		s.Logger.Warn("clipboard clear failed", map[string]interface{}{"error": err.Error()})
	}
	eraseLine(s.Out, len(lastLine))
	fmt.Fprintln(s.Out, "Clipboard cleared!")
	return 0
}

func countdownLine(seconds int) string {
	if seconds == 1 {
		return "Clearing the clipboard in 1 second..."
	}
	return fmt.Sprintf("Clearing the clipboard in %d seconds...", seconds)
}

// eraseLine rewinds to the start of the line and blanks out the previous
// status text so the countdown updates in place instead of scrolling.
func eraseLine(out io.Writer, width int) {
	fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", width))
}

// clipboardExitCode propagates the copy helper's own exit status when it has
// one; any other failure maps to a generic non-zero status.
func clipboardExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
