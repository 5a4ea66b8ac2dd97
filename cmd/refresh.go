package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	savings "github.com/subodhkangale07/savings"
)

type refreshCmd struct {
	force bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch the current USD to INR exchange rate" }
func (*refreshCmd) Usage() string {
	return `syfe refresh [-f]

  Fetches the USD to INR rate from exchangerate-api.com and caches it.
  A cached rate younger than one hour is kept unless -f is given.
  The API key comes from -exchange-api-key or EXCHANGE_API_KEY.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Fetch even when the cached rate is still fresh.")
}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if state.Rate.Fresh() && !c.force {
		fmt.Printf("Rate is fresh: %s INR per USD. Use -f to fetch anyway.\n", state.Rate.EffectiveRate())
		return subcommands.ExitSuccess
	}

	apiKey := savings.ExchangeAPIKey()
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no API key. Set -exchange-api-key or EXCHANGE_API_KEY.")
		return subcommands.ExitUsageError
	}

	client := &http.Client{Timeout: 30 * time.Second}
	err = state.Rate.Refresh(func() (decimal.Decimal, error) {
		return savings.FetchRate(client, apiKey)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rate: %v\n", err)
		return subcommands.ExitFailure
	}

	snap, _ := state.Rate.Get()
	if err := Store().SaveRate(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rate: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched rate: %s INR per USD\n", snap.Rate)
	return subcommands.ExitSuccess
}
