// Command quotecheck prices a trip against a running chauffeur-hub and prints
// one line per vehicle.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/client"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/client/quoteclient"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	var (
		baseURL    = flag.String("url", envOr("QUOTE_API_URL", "http://localhost:8080/api"), "quote api base url")
		pickup     = flag.String("pickup", "Bandra West, Mumbai", "pickup location")
		lead       = flag.Duration("lead", 4*time.Hour, "time from now until pickup")
		passengers = flag.Int("passengers", 2, "passenger count")
		luggage    = flag.Int("luggage", 1, "luggage count")
		carrier    = flag.Bool("carrier", false, "request a luggage carrier")
		pkg        = flag.String("package", "", "hourly package code, switches to HOURLY mode")
		timeout    = flag.Duration("timeout", 30*time.Second, "per request timeout")
	)
	flag.Parse()

	log := logger.New(os.Getenv("LOG_LEVEL"))

	quotes, err := quoteclient.New(log,
		client.WithName("quotecheck"),
		client.WithBaseURL(*baseURL),
		client.WithTimeout(*timeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to create quote client")
	}

	params := schema.QuoteRequestParams{
		Pickup:       *pickup,
		Datetime:     schema.DateTime{Time: time.Now().Add(*lead)},
		Passengers:   *passengers,
		LuggageCount: *luggage,
		NeedCarrier:  *carrier,
		Mode:         schema.BookingModeNormal,
		PackageCode:  converting.NilIfZero(*pkg),
	}
	if params.PackageCode != nil {
		params.Mode = schema.BookingModeHourly
	}

	response, err := quotes.GetQuote(context.Background(), params)
	if err != nil {
		log.Fatal().Err(err).Msg("Quote failed")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tPRICE\tCARRIER\tDIRECT\tREASON")
	for _, line := range response.Vehicles {
		carrierFee := "-"
		if line.CarrierFee != nil {
			carrierFee = fmt.Sprint(*line.CarrierFee)
		}
		reason := ""
		if line.DisabledReason != nil {
			reason = *line.DisabledReason
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%s\n", line.VehicleCode, line.Price, carrierFee, line.DirectEligible, reason)
	}
	_ = w.Flush()

	fmt.Printf("\n%s (amounts in %s paise)\n", response.BreakdownNote, response.Currency)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
