package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/observability"
)

// exitCodeFor maps an error kind to a semantic process exit code.
func exitCodeFor(err error) foundry.ExitCode {
	switch core.KindOf(err) {
	case core.KindConfiguration:
		return foundry.ExitConfigInvalid
	case core.KindProtocol, core.KindUpstream, core.KindTransientBatch:
		return foundry.ExitExternalServiceUnavailable
	default:
		return foundry.ExitFailure
	}
}

// exitForError logs err with its remediation hint and exits.
func exitForError(err error, msg string) {
	if hint := core.HintOf(err); hint != "" {
		observability.CLILogger.Info("Hint: " + hint)
	}
	ExitWithCode(observability.CLILogger, exitCodeFor(err), msg, err)
}

// Exit terminates the process for an error returned by Execute. The exit
// code follows the error kind.
func Exit(err error) {
	ExitWithCode(observability.CLILogger, exitCodeFor(err), "Command failed", err)
}

// ExitWithCode logs msg and err with the exit code metadata, then exits.
// A nil logger writes to stderr instead.
func ExitWithCode(logger *logging.Logger, exitCode foundry.ExitCode, msg string, err error) {
	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok || logger == nil {
		ExitWithCodeStderr(exitCode, msg, err)
		return
	}

	fields := []zap.Field{
		zap.Int("exit_code", info.Code),
		zap.String("exit_name", info.Name),
		zap.String("exit_category", info.Category),
	}
	if kind := core.KindOf(err); kind != "" {
		fields = append(fields, zap.String("error_kind", string(kind)))
	}
	fields = append(fields, envelopeFields(err)...)
	fields = append(fields, zap.Error(underlying(err)))
	logger.Error(msg, fields...)
	_ = logger.Sync()

	os.Exit(info.Code)
}

// ExitWithCodeStderr writes msg and err to stderr and exits. Used before the
// CLI logger exists.
func ExitWithCodeStderr(exitCode foundry.ExitCode, msg string, err error) {
	switch {
	case err == nil:
		fmt.Fprintf(os.Stderr, "FATAL: %s\n", msg)
	default:
		var envelope *errors.ErrorEnvelope
		if stderrors.As(err, &envelope) {
			fmt.Fprintf(os.Stderr, "FATAL: %s [%s]: %s\n", msg, envelope.Code, envelope.Message)
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
		}
	}

	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		os.Exit(int(exitCode))
	}
	fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)
	os.Exit(info.Code)
}

func envelopeFields(err error) []zap.Field {
	var envelope *errors.ErrorEnvelope
	if !stderrors.As(err, &envelope) {
		return nil
	}
	fields := []zap.Field{
		zap.String("error_code", envelope.Code),
		zap.String("correlation_id", envelope.CorrelationID),
	}
	if envelope.Context != nil {
		fields = append(fields, zap.Any("error_context", envelope.Context))
	}
	return fields
}

// underlying unwraps an envelope to the error it was built from.
func underlying(err error) error {
	var envelope *errors.ErrorEnvelope
	if stderrors.As(err, &envelope) && envelope.Original != nil {
		if original, ok := envelope.Original.(error); ok {
			return original
		}
	}
	return err
}
