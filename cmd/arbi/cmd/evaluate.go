package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// inputFlags collects the product signal flags shared by evaluate and
// analyses save.
type inputFlags struct {
	identifier  string
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
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.identifier, "identifier", "", "marketplace identifier for catalog enrichment")
	fs.Float64Var(&f.price, "price", 0, "selling price (required)")
	fs.Float64Var(&f.cost, "cost", 0, "unit cost price")
	fs.StringVar(&f.category, "category", "", "marketplace category")
	fs.Float64Var(&f.weight, "weight", 0, "unit weight in pounds")
	fs.Float64Var(&f.length, "length", 0, "package length in inches")
	fs.Float64Var(&f.width, "width", 0, "package width in inches")
	fs.Float64Var(&f.height, "height", 0, "package height in inches")
	fs.IntVar(&f.rank, "rank", 0, "sales rank proxy, 0 means unknown")
	fs.IntVar(&f.competitors, "competitors", -1, "competing seller count, -1 means unknown")
	fs.StringVar(&f.trend, "trend", "", "sales trend (growing, stable, declining)")
	fs.BoolVar(&f.apparel, "apparel", false, "product is apparel")
	fs.BoolVar(&f.dangerous, "dangerous", false, "product is a dangerous good")
	fs.BoolVar(&f.amazon, "amazon-seller", false, "the marketplace itself sells this product")
	fs.BoolVar(&f.seasonal, "seasonal", false, "demand is seasonal")
	fs.IntVar(&f.delicacy, "delicacy", 0, "fragility rating 1-5, 1 most fragile")
	fs.IntVar(&f.variations, "variations", 0, "variation count")
	fs.StringVar(&f.placement, "placement", "", "inbound placement (optimized, partial, minimal)")
	fs.Float64Var(&f.ads, "ads", 0, "advertising cost per unit")
	fs.Float64Var(&f.rebate, "rebate", 0, "supplier rebate per unit")
	fs.Float64Var(&f.unitsMonth, "units-per-month", 0, "estimated units sold per month")
	fs.Float64Var(&f.daysToSell, "days-to-sell", 0, "estimated days to sell one unit")
}

func (f *inputFlags) inputs() *domain.ProductInputs {
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

func evaluateCmd() *cobra.Command {
	var f inputFlags

	c := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a product without saving it",
		Example: `  arbi evaluate --price 49.99 --cost 15 --category electronics \
    --weight 0.75 --length 3.9 --width 3.9 --height 3.5 --rank 1500`,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := newClient().Evaluate(context.Background(), f.identifier, f.inputs())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printScoreResult(res)
		},
	}
	f.register(c.Flags())
	cobra.CheckErr(c.MarkFlagRequired("price"))
	return c
}
