package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-books/internal/agingservice"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/exportpkg"
)

func newAgingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Bucket open invoices by days past due",
		Example: `  ledgerctl aging --file invoices.json --as-of 2024-03-31
  ledgerctl aging --file invoices.json --csv`,
		RunE: runAging,
	}

	cmd.Flags().StringP("file", "f", "", "JSON array of invoices")
	cmd.Flags().String("as-of", "", "Reference date (format: YYYY-MM-DD, default: today)")
	cmd.Flags().Bool("csv", false, "Print the report as CSV")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAging(cmd *cobra.Command, _ []string) error {
	l := zerolog.Ctx(cmd.Context())

	path, _ := cmd.Flags().GetString("file")
	asOfStr, _ := cmd.Flags().GetString("as-of")
	asCSV, _ := cmd.Flags().GetBool("csv")

	asOf, err := domain.ParseAsOf(asOfStr, time.Now())
	if err != nil {
		return err
	}

	var params []domain.InvoiceParams
	if err := readJSON(path, &params); err != nil {
		return err
	}

	invoices := make([]domain.Invoice, 0, len(params))

	for _, p := range params {
		inv, err := p.Invoice()
		if err != nil {
			l.Error().Err(err).Str("invoice_id", p.ID).Send()
			return err
		}

		invoices = append(invoices, inv)
	}

	l.Debug().Int("invoices", len(invoices)).Time("as_of", asOf).Msg("bucketing")

	report, err := agingservice.Bucket(invoices, asOf)
	if err != nil {
		var dq *domain.DataQualityError
		if errors.As(err, &dq) {
			_ = writeJSON(cmd.OutOrStdout(), dq.Issues)
		}

		return err
	}

	if asCSV {
		return exportpkg.WriteAgingCSV(cmd.OutOrStdout(), report)
	}

	return writeJSON(cmd.OutOrStdout(), report)
}
