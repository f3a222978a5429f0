package main

import (
	"fmt"
	"os"
	"time"

	"github.com/banachtech/fxsmile/api"
	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/banachtech/fxsmile/hedge"
	"github.com/banachtech/fxsmile/smile"
	"github.com/schollz/progressbar/v3"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}

	demoSmile()
	demoFlowHedge()
	demoFactorHedge()
}

func serve() {
	conn, err := db.Connect()
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	store := db.NewStore(conn)
	server := api.NewServer(store)

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = "0.0.0.0:8080"
	}

	err = server.Start(address)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func demoSmile() {
	q := smile.Quotes{Spot: 1.0, ATM: 0.08, RR25: 0.01, RR10: 0.018, BF25: 0.0025, BF10: 0.0080, Texp: 0.5}

	fmt.Println("cubic spline smile, reference market quotes")
	for _, k := range []float64{0.01, 1.0, 10.0} {
		model, err := smile.Build(q, k)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}

		lo, hi := model.Bounds()
		fmt.Printf("extrapolation factor %v, strike range [%.6f, %.6f]\n", k, lo, hi)
		for _, a := range q.Anchors() {
			fmt.Printf("  K %.6f  market %.6f  spline %.6f\n", a.Strike, a.Vol, model.Volatility(a.Strike))
		}
		fmt.Printf("  flat tails: vol %.6f below, vol %.6f above\n", model.Volatility(0.5*lo), model.Volatility(2.0*hi))
	}
}

func demoFlowHedge() {
	start := time.Now()

	// same seed in both modes, so full and partial hedging see the same paths
	sim := hedge.NewFlowSim()
	sim.Seed = 42
	full := sim.Run()
	sim.FullHedge = false
	partial := sim.Run()

	fmt.Printf("[%9.5fs] flow hedging, %v runs of %v steps\n", time.Since(start).Seconds(), sim.Runs, sim.Steps)
	fmt.Printf("  full hedge     mean %12.6f  std %12.6f  sharpe %8.4f\n", full.Mean, full.Std, full.Sharpe)
	fmt.Printf("  partial hedge  mean %12.6f  std %12.6f  sharpe %8.4f\n", partial.Mean, partial.Std, partial.Sharpe)
}

func demoFactorHedge() {
	tenors := []float64{0.1, 0.25, 0.5, 0.75, 1.0, 2.0}
	strategies := []hedge.Strategy{hedge.NoHedge, hedge.TriangleHedge, hedge.FactorHedge}

	start := time.Now()
	bar := progressBar(len(tenors) * len(strategies))
	stds := make([][]float64, len(tenors))
	for i, tenor := range tenors {
		stds[i] = make([]float64, len(strategies))
		for j, strategy := range strategies {
			sim := hedge.NewFactorSim()
			sim.Tenor = tenor
			sim.Strategy = strategy
			bar.Describe(fmt.Sprintf("tenor %.2f, %v", tenor, strategy))

			res, err := sim.Run()
			if err != nil {
				fmt.Println(err)
				os.Exit(-1)
			}
			stds[i][j] = res.Std
			bar.Add(1)
		}
	}

	fmt.Printf("[%9.5fs] forward hedging, pnl std in bp\n", time.Since(start).Seconds())
	fmt.Printf("%8s", "tenor")
	for _, strategy := range strategies {
		fmt.Printf(" %12v", strategy)
	}
	fmt.Println()
	for i, tenor := range tenors {
		fmt.Printf("%8.2f", tenor)
		for j := range strategies {
			fmt.Printf(" %12.4f", stds[i][j]*1e4)
		}
		fmt.Println()
	}
}

func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
