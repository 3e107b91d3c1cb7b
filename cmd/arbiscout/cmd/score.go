package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbiscout/arbiscout/internal/engine"
	"github.com/arbiscout/arbiscout/internal/ratetable"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

type scoreFlags struct {
	price       float64
	cost        float64
	category    string
	weight      float64
	length      float64
	width       float64
	height      float64
	rank        int
	competitors int
	trend       string
	apparel     bool
	dangerous   bool
	amazon      bool
	seasonal    bool
	delicacy    int
	variations  int
	placement   string
	ads         float64
	rebate      float64
	unitsMonth  float64
	daysToSell  float64

	tablePath string
	asJSON    bool
}

func scoreCommand() *cobra.Command {
	var f scoreFlags

	c := &cobra.Command{
		Use:   "score",
		Short: "Score a product locally",
		Long: "Runs one evaluation directly against a rate table, without a\n" +
			"server or database. Useful for spot checks and table tuning.",
		Example: `  arbiscout score --price 49.99 --cost 15 --category electronics \
    --weight 0.75 --length 3.9 --width 3.9 --height 3.5 --rank 1500`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runScore(&f)
		},
	}

	c.Flags().Float64Var(&f.price, "price", 0, "selling price (required)")
	c.Flags().Float64Var(&f.cost, "cost", 0, "unit cost price")
	c.Flags().StringVar(&f.category, "category", "", "marketplace category")
	c.Flags().Float64Var(&f.weight, "weight", 0, "unit weight in pounds")
	c.Flags().Float64Var(&f.length, "length", 0, "package length in inches")
	c.Flags().Float64Var(&f.width, "width", 0, "package width in inches")
	c.Flags().Float64Var(&f.height, "height", 0, "package height in inches")
	c.Flags().IntVar(&f.rank, "rank", 0, "sales rank proxy, 0 means unknown")
	c.Flags().IntVar(&f.competitors, "competitors", -1, "competing seller count, -1 means unknown")
	c.Flags().StringVar(&f.trend, "trend", "", "sales trend (growing, stable, declining)")
	c.Flags().BoolVar(&f.apparel, "apparel", false, "product is apparel")
	c.Flags().BoolVar(&f.dangerous, "dangerous", false, "product is a dangerous good")
	c.Flags().BoolVar(&f.amazon, "amazon-seller", false, "the marketplace itself sells this product")
	c.Flags().BoolVar(&f.seasonal, "seasonal", false, "demand is seasonal")
	c.Flags().IntVar(&f.delicacy, "delicacy", 0, "fragility rating 1-5, 1 most fragile")
	c.Flags().IntVar(&f.variations, "variations", 0, "variation count")
	c.Flags().StringVar(&f.placement, "placement", "", "inbound placement (optimized, partial, minimal)")
	c.Flags().Float64Var(&f.ads, "ads", 0, "advertising cost per unit")
	c.Flags().Float64Var(&f.rebate, "rebate", 0, "supplier rebate per unit")
	c.Flags().Float64Var(&f.unitsMonth, "units-per-month", 0, "estimated units sold per month")
	c.Flags().Float64Var(&f.daysToSell, "days-to-sell", 0, "estimated days to sell one unit")
	c.Flags().StringVar(&f.tablePath, "table", "", "rate table file (default: built-in table)")
	c.Flags().BoolVar(&f.asJSON, "json", false, "print the full result as JSON")
	cobra.CheckErr(c.MarkFlagRequired("price"))

	return c
}

func init() {
	rootCmd.AddCommand(scoreCommand())
}

func runScore(f *scoreFlags) error {
	table, err := ratetable.Load(f.tablePath)
	if err != nil {
		return fmt.Errorf("loading rate table: %w", err)
	}
	if err := ratetable.Validate(table); err != nil {
		return fmt.Errorf("validating rate table: %w", err)
	}

	in := f.inputs()
	evaluator := engine.NewEvaluator(table)
	res, err := evaluator.Evaluate(in)
	if err != nil {
		return err
	}

	if f.asJSON {
		return outputJSON(res)
	}
	return printScoreResult(res)
}

func (f *scoreFlags) inputs() *domain.ProductInputs {
	in := &domain.ProductInputs{
		SellingPrice:           f.price,
		CostPrice:              f.cost,
		Category:               f.category,
		UnitWeightLb:           f.weight,
		DimensionsIn:           domain.Dimensions{LengthIn: f.length, WidthIn: f.width, HeightIn: f.height},
		IsApparel:              f.apparel,
		IsDangerousGood:        f.dangerous,
		AmazonIsSeller:         f.amazon,
		SalesTrend:             domain.SalesTrend(f.trend),
		IsSeasonal:             f.seasonal,
		DelicacyRating:         f.delicacy,
		VariationCount:         f.variations,
		InboundPlacement:       domain.PlacementOption(f.placement),
		AdvertisingCostPerUnit: f.ads,
		SupplierRebatePerUnit:  f.rebate,
	}
	if f.rank > 0 {
		in.RankProxy = &f.rank
	}
	if f.competitors >= 0 {
		in.CompetitorCount = &f.competitors
	}
	if f.unitsMonth > 0 {
		in.EstimatedUnitsPerMonth = &f.unitsMonth
	}
	if f.daysToSell > 0 {
		in.EstimatedDaysToSell = &f.daysToSell
	}
	return in
}
