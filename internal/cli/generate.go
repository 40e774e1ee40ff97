package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appestimate "github.com/remodj/billing-api/internal/application/estimate"
	"github.com/remodj/billing-api/internal/domain/entity"
	"github.com/remodj/billing-api/internal/infrastructure/assets"
	infrapdf "github.com/remodj/billing-api/internal/infrastructure/pdf"
	"github.com/remodj/billing-api/pkg/logger"
)

var (
	generateInput  string
	generateOutput string
	generateBadge  string
)

// draftDoc is the YAML shape of an offline draft. Money values are strings,
// like form inputs; malformed ones coerce the same way the web surface does.
type draftDoc struct {
	EstimateNo string `yaml:"estimate_no"`
	Date       string `yaml:"date"` // ISO YYYY-MM-DD
	Customer   struct {
		Name    string `yaml:"name"`
		Phone   string `yaml:"phone"`
		Address string `yaml:"address"`
	} `yaml:"customer"`
	Items []struct {
		Name      string `yaml:"name"`
		Quantity  int    `yaml:"quantity"`
		UnitPrice string `yaml:"unit_price"`
	} `yaml:"items"`
	Discount string `yaml:"discount"`
	Tax      string `yaml:"tax"`
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render an estimate PDF from a YAML draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "YAML draft file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", ".", "directory to write the PDF into")
	generateCmd.Flags().StringVar(&generateBadge, "badge", "", "optional branding badge image (png/jpg)")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := os.ReadFile(generateInput)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	var doc draftDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse draft: %w", err)
	}

	log := logger.New(logger.Config{Env: "development", Level: "warn"})

	// Feed the YAML through the same builder the web surface uses, so field
	// coercion and defaults behave identically.
	builder := appestimate.NewBuilderUseCase(time.Now)
	id, _ := builder.CreateDraft()
	if err := applyDoc(builder, id, doc); err != nil {
		return err
	}

	var badge appestimate.BadgeSource
	if generateBadge != "" {
		badge = assets.NewFileBadgeSource(generateBadge)
	}
	generate := appestimate.NewGenerateUseCase(
		builder, infrapdf.NewMarotoPDFGenerator(), badge, 3*time.Second, log,
	)

	pdfBytes, filename, err := generate.GenerateEstimatePDF(ctx, id)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			printValidationErrors(verr)
			return fmt.Errorf("draft is invalid (%d field(s))", len(verr.Fields))
		}
		return err
	}

	outPath := filepath.Join(generateOutput, filename)
	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Println(outPath)
	return nil
}

func applyDoc(builder *appestimate.BuilderUseCase, id string, doc draftDoc) error {
	type headerSet struct {
		field entity.Field
		value string
	}
	for _, h := range []headerSet{
		{entity.FieldEstimateNo, doc.EstimateNo},
		{entity.FieldDate, doc.Date},
		{entity.FieldCustomerName, doc.Customer.Name},
		{entity.FieldCustomerPhone, doc.Customer.Phone},
		{entity.FieldCustomerAddress, doc.Customer.Address},
	} {
		// Empty YAML values keep the draft defaults (auto number, today).
		if h.value == "" {
			continue
		}
		if err := builder.SetHeaderField(id, string(h.field), h.value); err != nil {
			return err
		}
	}

	for i, item := range doc.Items {
		if i > 0 {
			if err := builder.AddItem(id); err != nil {
				return err
			}
		}
		qty := item.Quantity
		if qty == 0 {
			qty = 1 // form default for an untouched row
		}
		if err := builder.UpdateItem(id, i, appestimate.ItemFieldName, item.Name); err != nil {
			return err
		}
		if err := builder.UpdateItem(id, i, appestimate.ItemFieldQuantity, strconv.Itoa(qty)); err != nil {
			return err
		}
		if err := builder.UpdateItem(id, i, appestimate.ItemFieldUnitPrice, item.UnitPrice); err != nil {
			return err
		}
	}

	if doc.Discount != "" {
		if err := builder.SetDiscount(id, doc.Discount); err != nil {
			return err
		}
	}
	if doc.Tax != "" {
		if err := builder.SetTax(id, doc.Tax); err != nil {
			return err
		}
	}
	return nil
}

func printValidationErrors(verr *entity.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", f, verr.Fields[entity.Field(f)])
	}
}
