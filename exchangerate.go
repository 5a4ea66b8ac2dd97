package savings

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the exchange rate provider client. It is a pure
// "ask and report" boundary: one attempt per call, classified errors, and
// never a silent fallback value (that policy belongs to the RateCache).

const exchangeAPIKeyEnv = "EXCHANGE_API_KEY"

var exchangeAPIFlag = flag.String("exchange-api-key", "", "API key for the exchange rate provider.\n If missing it will be read from the environment variable \""+exchangeAPIKeyEnv+"\". You can get one at https://www.exchangerate-api.com/")

// ExchangeAPIKey returns the provider API key from the flag or environment.
func ExchangeAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *exchangeAPIFlag == "" {
		*exchangeAPIFlag = os.Getenv(exchangeAPIKeyEnv)
	}
	return *exchangeAPIFlag
}

// rateEndpoint is the provider base URL; a variable so tests can point it at
// a local server.
var rateEndpoint = "https://v6.exchangerate-api.com/v6"

// ratePath extracts the USD to INR factor from the provider payload.
const ratePath = "$.conversion_rates.INR"

// FetchRate performs a single fetch attempt against the rate provider and
// returns the USD to INR conversion factor. Failures are reported as a
// *FetchError classifying the cause; the caller decides the fallback.
func FetchRate(client *http.Client, apiKey string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/%s/latest/USD", rateEndpoint, apiKey)

	resp, err := client.Get(addr)
	if err != nil {
		return decimal.Zero, &FetchError{Kind: FetchUnknown, Err: err}
	}
	defer resp.Body.Close()

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		return decimal.Zero, &FetchError{Kind: kind, Err: fmt.Errorf("provider returned %s", resp.Status)}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return decimal.Zero, &FetchError{Kind: FetchUnknown, Err: err}
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return decimal.Zero, &FetchError{Kind: FetchUnknown, Err: fmt.Errorf("malformed payload: %w", err)}
	}

	// The provider reports business errors in-band with a 200.
	if result, _ := jsonString(jobj, "$.result"); result == "error" {
		errType, _ := jsonString(jobj, "$[\"error-type\"]")
		return decimal.Zero, &FetchError{
			Kind: classifyErrorType(errType),
			Err:  fmt.Errorf("provider error %q", errType),
		}
	}

	jval, err := jsonpath.Get(ratePath, jobj)
	if err != nil {
		return decimal.Zero, &FetchError{Kind: FetchUnknown, Err: fmt.Errorf("missing %q in payload: %w", ratePath, err)}
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return decimal.Zero, &FetchError{Kind: FetchUnknown, Err: fmt.Errorf("%q is not a positive number: %v", ratePath, jval)}
	}
	return decimal.NewFromFloat(val), nil
}

// classifyStatus maps a non-2xx HTTP status to an error kind.
func classifyStatus(code int) (FetchErrorKind, bool) {
	switch {
	case code >= 200 && code < 300:
		return 0, false
	case code == http.StatusTooManyRequests:
		return FetchRateLimited, true
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return FetchUnauthorized, true
	case code == http.StatusNotFound:
		return FetchNotFound, true
	default:
		return FetchUnknown, true
	}
}

// classifyErrorType maps the provider's in-band "error-type" strings.
func classifyErrorType(errType string) FetchErrorKind {
	switch errType {
	case "quota-reached":
		return FetchRateLimited
	case "invalid-key", "inactive-account":
		return FetchUnauthorized
	case "unsupported-code", "unknown-code":
		return FetchNotFound
	default:
		return FetchUnknown
	}
}

// jsonString reads a string value at path, or "" when absent.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", err
	}
	s, _ := jval.(string)
	return s, nil
}
