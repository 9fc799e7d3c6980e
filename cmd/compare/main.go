package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jackc/pgx/v4"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/app/analysis"
	"github.com/wltan/sgfi-compare/internal/app/consolidate"
	"github.com/wltan/sgfi-compare/internal/app/masapi"
	"github.com/wltan/sgfi-compare/internal/app/scrape"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"github.com/wltan/sgfi-compare/internal/pkg/store"
	"go.uber.org/zap"
)

type config struct {
	InvestmentAmount     float64 `envconfig:"INVESTMENT_AMOUNT" default:"10000"`
	MinTenure            int     `envconfig:"MIN_TENURE" default:"0"`
	MaxTenure            int     `envconfig:"MAX_TENURE" default:"999"`
	SSBHoldings          float64 `envconfig:"SSB_HOLDINGS" default:"0"`
	YieldGapThresholdBps float64 `envconfig:"TBILL_YIELD_GAP_BPS" default:"10"`
	DatabaseURL          string  `envconfig:"DATABASE_URL"`
}

func main() {
	logger, err := zap.NewDevelopment()
	noErr(err)

	_ = godotenv.Load()
	var cfg config
	noErr(envconfig.Process("sgfi", &cfg))

	ctx := context.Background()
	client := masapi.NewClient(logger.Named("mas-api"))
	svc := consolidate.NewService(client, defaultSources(logger), consolidate.Config{
		SSBHoldings:          decimal.NewFromFloat(cfg.SSBHoldings),
		YieldGapThresholdBps: cfg.YieldGapThresholdBps,
	}, logger.Named("consolidate"))

	result, err := svc.Combined(ctx)
	noErr(err)

	for _, f := range result.Failures {
		logger.Warn("source unavailable", zap.String("product", f.Product), zap.String("error", f.Error))
	}
	for _, w := range result.Warnings {
		logger.Warn(w.Message, zap.String("code", string(w.Code)))
	}

	amount := decimal.NewFromFloat(cfg.InvestmentAmount)
	printReport(result.Offers, amount, cfg.MinTenure, cfg.MaxTenure, logger)

	if cfg.DatabaseURL != "" {
		conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
		noErr(err)
		defer conn.Close(ctx)
		noErr(store.NewPostgres(conn, logger.Named("pg-store")).ReplaceSnapshot(ctx, result.Offers))
	}
}

func defaultSources(logger *zap.Logger) []scrape.Source {
	return []scrape.Source{
		scrape.NewFixedDeposit(
			"https://www.dbs.com.sg/personal/rates-online/fixed-deposit-rate-singapore-dollar.page",
			"tbl-primary", "DBS", decimal.NullDecimal{}, logger.Named("dbs")),
		scrape.NewFixedDeposit(
			"https://www.uob.com.sg/personal/online-rates/singapore-dollar-time-fixed-deposit-rates.page",
			"table-fluid", "UOB", decimal.NullDecimal{}, logger.Named("uob")),
		scrape.NewFixedDeposit(
			"https://www.ocbc.com/personal-banking/deposits/fixed-deposit-account",
			"table-bordered", "OCBC", decimal.NullDecimal{}, logger.Named("ocbc")),
	}
}

func printReport(offers []model.Offer, amount decimal.Decimal, minTenure, maxTenure int, logger *zap.Logger) {
	fmt.Println("Products:")
	for _, p := range analysis.Products(offers) {
		fmt.Println("  " + p)
	}

	bestReturns, err := analysis.BestReturns(offers, amount, minTenure, maxTenure)
	noErr(err)
	fmt.Printf("\nBest achievable return per tenure for S$%s:\n", amount)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Tenure\tProvider\tProduct\tRate\tInvested\tReturn")
	for _, b := range bestReturns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f%%\t%s\t%s\n",
			b.Tenure, b.Provider, b.Product, b.Rate, b.Invested, b.DollarReturn)
	}
	noErr(w.Flush())

	fmt.Println("\nBest quoted rate per tenure:")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Tenure\tProvider\tProduct\tRate")
	for _, o := range analysis.BestRates(offers, minTenure, maxTenure) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f%%\n", o.Tenure, o.Provider, o.Product, o.Rate)
	}
	noErr(w.Flush())

	logger.Info("report complete", zap.Int("offers", len(offers)))
}

func noErr(err error) {
	if err != nil {
		panic("failed to initialize something important: " + err.Error())
	}
}
