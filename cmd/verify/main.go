package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/deliverymart/catalog-seeder/internal/config"
	"github.com/deliverymart/catalog-seeder/internal/repository"
	"github.com/deliverymart/catalog-seeder/internal/repository/postgres"
	"github.com/deliverymart/catalog-seeder/pkg/database"
	"github.com/deliverymart/catalog-seeder/pkg/logger"
)

const (
	topCategoriesLimit = 10
	productSampleLimit = 5
	variantSampleLimit = 5
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("catalog-verify", cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	connectCtx, connectCancel := context.WithTimeout(ctx, 30*time.Second)
	defer connectCancel()

	pool, err := database.NewPostgresPoolWithLogger(connectCtx, cfg.Postgres(), log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	reporter := postgres.NewReportRepository(pool)
	return report(ctx, reporter)
}

func report(ctx context.Context, reporter repository.CatalogReporter) error {
	if err := printTenantSummaries(ctx, reporter); err != nil {
		return err
	}
	if err := printPriceDistribution(ctx, reporter); err != nil {
		return err
	}
	if err := printPromoStats(ctx, reporter); err != nil {
		return err
	}
	if err := printTopCategories(ctx, reporter); err != nil {
		return err
	}
	if err := printProductSamples(ctx, reporter); err != nil {
		return err
	}
	return printVariantSamples(ctx, reporter)
}

func printTenantSummaries(ctx context.Context, reporter repository.CatalogReporter) error {
	summaries, err := reporter.TenantSummaries(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Rows per tenant ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tenant", "Brands", "Categories", "Products", "Variants"})
	for _, s := range summaries {
		table.Append([]string{
			s.TenantID,
			strconv.FormatInt(s.Brands, 10),
			strconv.FormatInt(s.Categories, 10),
			strconv.FormatInt(s.Products, 10),
			strconv.FormatInt(s.Variants, 10),
		})
	}
	table.Render()
	return nil
}

func printPriceDistribution(ctx context.Context, reporter repository.CatalogReporter) error {
	buckets, err := reporter.PriceDistribution(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Price distribution ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Range", "Variants"})
	for _, b := range buckets {
		table.Append([]string{b.Label, strconv.FormatInt(b.Count, 10)})
	}
	table.Render()
	return nil
}

func printPromoStats(ctx context.Context, reporter repository.CatalogReporter) error {
	stats, err := reporter.PromoStats(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Promotions ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Total variants", "On promotion", "Avg price", "Avg promo price", "Min price", "Max price"})
	table.Append([]string{
		strconv.FormatInt(stats.TotalVariants, 10),
		strconv.FormatInt(stats.OnPromotion, 10),
		fmt.Sprintf("R$ %.2f", stats.AvgPrice),
		fmt.Sprintf("R$ %.2f", stats.AvgPromoPrice),
		fmt.Sprintf("R$ %.2f", stats.MinPrice),
		fmt.Sprintf("R$ %.2f", stats.MaxPrice),
	})
	table.Render()
	return nil
}

func printTopCategories(ctx context.Context, reporter repository.CatalogReporter) error {
	counts, err := reporter.TopCategories(ctx, topCategoriesLimit)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Top subcategories ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tenant", "Subcategory", "Products"})
	for _, c := range counts {
		table.Append([]string{c.TenantID, c.Category, strconv.FormatInt(c.Products, 10)})
	}
	table.Render()
	return nil
}

func printProductSamples(ctx context.Context, reporter repository.CatalogReporter) error {
	samples, err := reporter.SampleProducts(ctx, productSampleLimit)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Sample products ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Brand", "Category", "Slug"})
	for _, s := range samples {
		table.Append([]string{s.Name, s.Brand, s.Category, s.Slug})
	}
	table.Render()
	return nil
}

func printVariantSamples(ctx context.Context, reporter repository.CatalogReporter) error {
	samples, err := reporter.SampleVariants(ctx, variantSampleLimit)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Sample variants ===")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"SKU", "Product", "Price", "Promo price", "Attributes"})
	for _, s := range samples {
		promo := "-"
		if s.PromoPrice != nil {
			promo = fmt.Sprintf("R$ %.2f", *s.PromoPrice)
		}
		table.Append([]string{
			s.SKU,
			s.Product,
			fmt.Sprintf("R$ %.2f", s.Price),
			promo,
			s.Attributes,
		})
	}
	table.Render()
	return nil
}
