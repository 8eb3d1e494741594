package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-books/internal/creditservice"
	"github.com/go-petr/pet-books/internal/domain"
)

func newCreditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credit",
		Short:   "Evaluate customer credit profiles",
		Example: `  ledgerctl credit --file profiles.json`,
		RunE:    runCredit,
	}

	cmd.Flags().StringP("file", "f", "", "JSON array of credit profiles")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCredit(cmd *cobra.Command, _ []string) error {
	l := zerolog.Ctx(cmd.Context())

	path, _ := cmd.Flags().GetString("file")

	var params []domain.CreditProfileParams
	if err := readJSON(path, &params); err != nil {
		return err
	}

	evaluations := make([]domain.CreditEvaluation, 0, len(params))

	for _, p := range params {
		profile, err := p.Profile()
		if err != nil {
			l.Error().Err(err).Str("customer_id", p.CustomerID).Send()
			return err
		}

		evaluations = append(evaluations, creditservice.Evaluate(profile))
	}

	return writeJSON(cmd.OutOrStdout(), evaluations)
}
