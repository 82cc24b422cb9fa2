package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/core/checker"
	"github.com/namelens/domainideas/internal/core/generator"
	"github.com/namelens/domainideas/internal/metrics"
)

// ClientIPResolver discovers the caller's public IP address.
type ClientIPResolver interface {
	Lookup(ctx context.Context) (string, error)
}

// Suggester coordinates generation and availability checks for one keyword.
type Suggester struct {
	Generator  *generator.Generator
	Lookup     checker.Lookup
	IPResolver ClientIPResolver

	BatchSize  int
	BatchDelay time.Duration
	Sleep      func(ctx context.Context, d time.Duration) error

	// DefaultCount applies when a request leaves MaxCount unset; MaxCount
	// caps what a request may ask for. Zero selects the built-in values.
	DefaultCount int
	MaxCount     int

	ToolVersion string
	Clock       func() time.Time
	Logger      *logging.Logger
}

// Ideas validates req and returns generated candidates without any network
// call.
func (s *Suggester) Ideas(req core.SuggestRequest) ([]string, string, error) {
	keyword, tld, count, err := s.normalize(req)
	if err != nil {
		return nil, "", err
	}

	candidates, err := s.generator().Generate(keyword, tld, count)
	if err != nil {
		return nil, "", err
	}
	normalizedTLD, _ := generator.NormalizeTLD(tld)
	return candidates, normalizedTLD, nil
}

// Suggest generates candidates for req and returns the available subset.
func (s *Suggester) Suggest(ctx context.Context, req core.SuggestRequest) (*core.SuggestResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestedAt := s.now()
	start := time.Now()
	provider := s.providerName()

	result, err := s.suggest(ctx, req, requestedAt)
	if err != nil {
		metrics.RecordSuggestion(provider, outcomeFor(err), 0, 0, time.Since(start))
		s.warn("Domain suggestion failed",
			zap.String("keyword", req.Keyword),
			zap.String("tld", req.TLD),
			zap.String("kind", string(core.KindOf(err))),
			zap.Error(err))
		return nil, err
	}

	metrics.RecordSuggestion(provider, "success", result.TotalGenerated, result.Available, time.Since(start))
	s.info("Domain suggestion completed",
		zap.String("check_id", result.Provenance.CheckID),
		zap.String("keyword", result.Keyword),
		zap.String("tld", result.TLD),
		zap.Int("generated", result.TotalGenerated),
		zap.Int("available", result.Available),
		zap.Int("batches", result.Provenance.Batches),
		zap.Int("skipped_batches", result.Provenance.Skipped))
	return result, nil
}

func (s *Suggester) suggest(ctx context.Context, req core.SuggestRequest, requestedAt time.Time) (*core.SuggestResult, error) {
	candidates, tld, err := s.Ideas(req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, core.InvalidInput("suggest", "no valid candidates could be generated for this keyword")
	}

	if s == nil || s.Lookup == nil {
		return nil, core.ConfigurationError("suggest", "registrar lookup is not configured", nil)
	}
	if err := s.Lookup.Validate(); err != nil {
		return nil, err
	}

	lookup, clientIP, err := s.bind(ctx)
	if err != nil {
		return nil, err
	}

	availability := &checker.AvailabilityChecker{
		Lookup:     lookup,
		BatchSize:  s.BatchSize,
		BatchDelay: s.BatchDelay,
		Sleep:      s.Sleep,
		Logger:     s.Logger,
	}
	report, err := availability.Check(ctx, candidates)
	if err != nil {
		return nil, err
	}

	return &core.SuggestResult{
		Keyword:        strings.TrimSpace(req.Keyword),
		TLD:            tld,
		TotalGenerated: len(candidates),
		Available:      len(report.Available),
		Domains:        report.Available,
		Provenance: core.Provenance{
			CheckID:     uuid.New().String(),
			RequestedAt: requestedAt,
			ResolvedAt:  s.now(),
			Source:      lookup.Name(),
			ClientIP:    clientIP,
			Batches:     report.Batches,
			Skipped:     report.Skipped,
			ToolVersion: s.ToolVersion,
		},
	}, nil
}

// bind resolves the caller IP for lookups that need one and returns a
// per-request lookup.
func (s *Suggester) bind(ctx context.Context) (checker.Lookup, string, error) {
	binder, ok := s.Lookup.(checker.IPBinder)
	if !ok {
		return s.Lookup, "", nil
	}

	ip := binder.ClientIP()
	if binder.NeedsClientIP() {
		if s.IPResolver == nil {
			return nil, "", core.ConfigurationError("resolve client ip", "client ip is not configured and no ip lookup is available", nil)
		}
		resolved, err := s.IPResolver.Lookup(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, "", ctxErr
			}
			cfgErr := core.ConfigurationError("resolve client ip", "could not determine the client ip", err)
			cfgErr.Hint = "set registrar.client_ip (or CLIENT_IP) to the address allow-listed with the registrar"
			return nil, "", cfgErr
		}
		ip = resolved
		s.debug("Resolved client IP", zap.String("client_ip", ip))
	}

	return binder.WithClientIP(ip), ip, nil
}

func (s *Suggester) normalize(req core.SuggestRequest) (string, string, int, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return "", "", 0, core.InvalidInput("suggest", "keyword is required")
	}
	tld := strings.TrimSpace(req.TLD)
	if tld == "" {
		return "", "", 0, core.InvalidInput("suggest", "tld is required")
	}
	if req.MaxCount < 0 {
		return "", "", 0, core.InvalidInput("suggest", fmt.Sprintf("max count must not be negative, got %d", req.MaxCount))
	}

	count := req.MaxCount
	if count == 0 {
		count = core.DefaultSuggestionCount
		if s != nil && s.DefaultCount > 0 {
			count = s.DefaultCount
		}
	}
	if s != nil && s.MaxCount > 0 && count > s.MaxCount {
		count = s.MaxCount
	}
	return keyword, tld, count, nil
}

func (s *Suggester) generator() *generator.Generator {
	if s != nil && s.Generator != nil {
		return s.Generator
	}
	if s != nil {
		return &generator.Generator{Logger: s.Logger}
	}
	return &generator.Generator{}
}

func (s *Suggester) providerName() string {
	if s == nil || s.Lookup == nil {
		return "none"
	}
	return s.Lookup.Name()
}

func (s *Suggester) now() time.Time {
	if s != nil && s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

func (s *Suggester) info(msg string, fields ...zap.Field) {
	if s != nil && s.Logger != nil {
		s.Logger.Info(msg, fields...)
	}
}

func (s *Suggester) warn(msg string, fields ...zap.Field) {
	if s != nil && s.Logger != nil {
		s.Logger.Warn(msg, fields...)
	}
}

func (s *Suggester) debug(msg string, fields ...zap.Field) {
	if s != nil && s.Logger != nil {
		s.Logger.Debug(msg, fields...)
	}
}

func outcomeFor(err error) string {
	if kind := core.KindOf(err); kind != "" {
		return string(kind)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "cancelled"
	}
	return "error"
}
