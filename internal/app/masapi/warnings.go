package masapi

import (
	"context"
	"fmt"
	"math"

	"cloud.google.com/go/civil"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

// DefaultYieldGapThresholdBps is the bid-vs-cutoff gap beyond which the last
// auction's cutoff yield is treated as a stale benchmark.
const DefaultYieldGapThresholdBps = 10.0

// SuddenYieldChangeWarning checks how far the latest secondary-market bid
// yield on the 6-month T-bill has drifted from the last completed auction's
// cutoff yield. MAS auctions two 6-month bills a month, so a large gap means
// the quoted cutoff is a poor estimate of the next one.
//
// Returns nil when the benchmark looks fine. The check degrades to a warning,
// never an error: being unable to verify freshness is itself worth surfacing.
func (c *Client) SuddenYieldChangeWarning(ctx context.Context, thresholdBps float64) *model.Warning {
	bidYield, err := c.SixMonthTbillBidYield(ctx)
	if err != nil {
		return &model.Warning{
			Code:    model.WarnCheckIncomplete,
			Message: fmt.Sprintf("could not verify T-bill benchmark freshness: %v", err),
		}
	}
	rec, err := c.MostRecentSixMonthTbill(ctx)
	if err == nil && rec.CutoffYield == nil {
		err = fmt.Errorf("auction record %s has no cutoff yield", rec.IssueCode)
	}
	if err != nil {
		return &model.Warning{
			Code:    model.WarnCheckIncomplete,
			Message: fmt.Sprintf("could not verify T-bill benchmark freshness: %v", err),
		}
	}

	gapBps := math.Abs(bidYield-*rec.CutoffYield) * 100
	if gapBps >= thresholdBps {
		return &model.Warning{
			Code: model.WarnStaleTbillBenchmark,
			Message: fmt.Sprintf(
				"bid yield %.2f%% differs from %s cutoff yield %.2f%% by %.0f bps; the quoted cutoff may not predict the next auction",
				bidYield, rec.IssueCode, *rec.CutoffYield, gapBps),
		}
	}
	return nil
}

// PastSSBDeadlineWarning flags the latest savings bond once its application
// deadline has passed; the bond is then shown for reference only.
func (c *Client) PastSSBDeadlineWarning(ctx context.Context, today civil.Date) *model.Warning {
	issue, err := c.LatestSSBIssue(ctx)
	if err != nil {
		return &model.Warning{
			Code:    model.WarnCheckIncomplete,
			Message: fmt.Sprintf("could not verify SSB application deadline: %v", err),
		}
	}
	deadline, err := civil.ParseDate(issue.LastDayToApply)
	if err != nil {
		return &model.Warning{
			Code:    model.WarnCheckIncomplete,
			Message: fmt.Sprintf("could not verify SSB application deadline for %s: %v", issue.IssueCode, err),
		}
	}
	if today.After(deadline) {
		return &model.Warning{
			Code: model.WarnSSBPastDeadline,
			Message: fmt.Sprintf(
				"last day to apply for SSB %s was %s; shown for reference only", issue.IssueCode, deadline),
		}
	}
	return nil
}
