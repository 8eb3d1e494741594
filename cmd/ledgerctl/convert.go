package main

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-books/internal/currencyservice"
	"github.com/go-petr/pet-books/internal/domain"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount between currencies of a rate table",
		Example: `  ledgerctl convert --rates rates.json --amount 100 --from EUR --to USD
  ledgerctl convert --rates rates.json --amount 1000 --from USD --to JPY --locale ja --iso`,
		RunE: runConvert,
	}

	cmd.Flags().String("rates", "", "JSON array of currency rates")
	cmd.Flags().String("amount", "", "Amount to convert")
	cmd.Flags().String("from", "", "Source currency code")
	cmd.Flags().String("to", "", "Target currency code")
	cmd.Flags().String("locale", "en", "Locale used to format the result")
	cmd.Flags().Bool("iso", false, "Use ISO 4217 minor units when formatting")

	for _, name := range []string{"rates", "amount", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runConvert(cmd *cobra.Command, _ []string) error {
	l := zerolog.Ctx(cmd.Context())

	path, _ := cmd.Flags().GetString("rates")
	amountStr, _ := cmd.Flags().GetString("amount")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	locale, _ := cmd.Flags().GetString("locale")
	iso, _ := cmd.Flags().GetBool("iso")

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return domain.ErrInvalidAmount
	}

	var rates []domain.CurrencyRate
	if err := readJSON(path, &rates); err != nil {
		return err
	}

	table, err := currencyservice.NewRateTable(rates)
	if err != nil {
		l.Error().Err(err).Str("rates", path).Send()
		return err
	}

	result, err := currencyservice.Convert(amount, from, to, table)
	if err != nil {
		return err
	}

	toRate, _ := table.Rate(to)

	return writeJSON(cmd.OutOrStdout(), domain.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: currencyservice.NewFormatter(locale, iso).Format(result, toRate),
	})
}
