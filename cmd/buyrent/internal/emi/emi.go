// Package emi implements `buyrent emi`.
package emi

import (
	"flag"
	"io"

	"github.com/homequant/buyrent/cmd/buyrent/internal/cli"
	"github.com/homequant/buyrent/money"
)

type output struct {
	LoanAmount     float64 `json:"loan_amount"`
	EMI            float64 `json:"emi"`
	Year1Interest  float64 `json:"year1_interest"`
	Year1Principal float64 `json:"year1_principal"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("emi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON parameter file ('-' for stdin; built-in defaults when omitted)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p, err := cli.Load(stdin, *inputPath)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	st := p.Loan()
	interest, principal := st.YearTotals(1)
	cli.WriteJSON(stdout, output{
		LoanAmount:     money.Round2(st.Amount),
		EMI:            money.Round2(st.EMI),
		Year1Interest:  money.Round2(interest),
		Year1Principal: money.Round2(principal),
	})
	return 0
}
