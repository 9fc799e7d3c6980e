package consolidate

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/app/masapi"
	"github.com/wltan/sgfi-compare/internal/app/scrape"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"go.uber.org/zap"
)

// BondsAndBillsAPI is the slice of the MAS client the service needs.
type BondsAndBillsAPI interface {
	LatestSSBIssue(ctx context.Context) (masapi.SSBIssue, error)
	SSBInterest(ctx context.Context, issueCode string) (masapi.SSBInterest, error)
	MostRecentSixMonthTbill(ctx context.Context) (masapi.TbillAuction, error)
	SuddenYieldChangeWarning(ctx context.Context, thresholdBps float64) *model.Warning
	PastSSBDeadlineWarning(ctx context.Context, today civil.Date) *model.Warning
}

// Config carries the investor-specific knobs of a consolidation run.
type Config struct {
	// SSBHoldings is what the investor already holds against the statutory cap.
	SSBHoldings decimal.Decimal
	// YieldGapThresholdBps triggers the stale-benchmark warning.
	YieldGapThresholdBps float64
}

// Result bundles the combined table with its diagnostics so callers can render
// or assert on them deterministically.
type Result struct {
	Offers   []model.Offer
	Failures []model.FetchFailure
	Warnings []model.Warning
}

type Service struct {
	api     BondsAndBillsAPI
	sources []scrape.Source
	cfg     Config
	logger  *zap.Logger

	now func() time.Time
}

func NewService(api BondsAndBillsAPI, sources []scrape.Source, cfg Config, logger *zap.Logger) *Service {
	if cfg.YieldGapThresholdBps == 0 {
		cfg.YieldGapThresholdBps = masapi.DefaultYieldGapThresholdBps
	}
	return &Service{
		api:     api,
		sources: sources,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Combined fetches every source in turn and merges the survivors. A failing
// source becomes a FetchFailure and never blocks the others; the only hard
// error is a schema violation during merge, which means a broken adapter.
func (s *Service) Combined(ctx context.Context) (Result, error) {
	var res Result
	var tables [][]model.Offer

	for _, src := range s.sources {
		offers, err := src.Offers()
		if err != nil {
			s.logger.Warn("source failed", zap.String("product", src.Product()), zap.Error(err))
			res.Failures = append(res.Failures, model.FetchFailure{Product: src.Product(), Error: err.Error()})
			continue
		}
		tables = append(tables, offers)
	}

	if ssbOffers, err := s.ssbOffers(ctx); err != nil {
		s.logger.Warn("ssb source failed", zap.Error(err))
		res.Failures = append(res.Failures, model.FetchFailure{Product: "MAS SSB", Error: err.Error()})
	} else {
		tables = append(tables, ssbOffers)
		if w := s.api.PastSSBDeadlineWarning(ctx, civil.DateOf(s.now())); w != nil {
			res.Warnings = append(res.Warnings, *w)
		}
	}

	if tbillOffers, err := s.tbillOffers(ctx); err != nil {
		s.logger.Warn("t-bill source failed", zap.Error(err))
		res.Failures = append(res.Failures, model.FetchFailure{Product: "MAS T-bill", Error: err.Error()})
	} else {
		tables = append(tables, tbillOffers)
		if w := s.api.SuddenYieldChangeWarning(ctx, s.cfg.YieldGapThresholdBps); w != nil {
			res.Warnings = append(res.Warnings, *w)
		}
	}

	combined, err := Merge(tables)
	if err != nil {
		return Result{}, err
	}
	res.Offers = combined

	s.logger.Info("consolidated sources",
		zap.Int("offers", len(res.Offers)),
		zap.Int("failures", len(res.Failures)),
		zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

func (s *Service) ssbOffers(ctx context.Context) ([]model.Offer, error) {
	issue, err := s.api.LatestSSBIssue(ctx)
	if err != nil {
		return nil, err
	}
	interest, err := s.api.SSBInterest(ctx, issue.IssueCode)
	if err != nil {
		return nil, err
	}
	return masapi.SSBOffers(interest, s.cfg.SSBHoldings)
}

func (s *Service) tbillOffers(ctx context.Context) ([]model.Offer, error) {
	rec, err := s.api.MostRecentSixMonthTbill(ctx)
	if err != nil {
		return nil, err
	}
	return masapi.TbillOffers(rec)
}
