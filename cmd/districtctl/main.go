// districtctl resolves coordinates to districts from the command line,
// through the static table or a live reverse-geocoding endpoint. Useful for
// verifying table changes and upstream behavior without a running service.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/sos-alert-service/internal/adapter/nominatim"
	"github.com/couchcryptid/sos-alert-service/internal/domain"
	"github.com/couchcryptid/sos-alert-service/internal/observability"
	"github.com/couchcryptid/sos-alert-service/internal/resolver/static"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "districtctl",
		Short:         "Resolve coordinates to district topics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newResolveCmd())
	return root
}

func newResolveCmd() *cobra.Command {
	var (
		lat             float64
		lon             float64
		strategy        string
		baseURL         string
		userAgent       string
		timeout         time.Duration
		defaultDistrict string
		topicPrefix     string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one coordinate and print the district as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := domain.Coordinate{Latitude: lat, Longitude: lon}
			if !c.InRange() {
				return fmt.Errorf("coordinate out of range: %.4f,%.4f", lat, lon)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			var resolver domain.Resolver
			switch strategy {
			case "static":
				resolver = static.New(domain.District(defaultDistrict))
			case "nominatim":
				metrics := observability.NewMetrics()
				client := nominatim.NewClient(baseURL, userAgent, timeout, metrics, logger)
				resolver = nominatim.NewResolver(client, domain.District(defaultDistrict),
					12*time.Hour, 1000, clockwork.NewRealClock(), metrics, logger)
			default:
				return fmt.Errorf("unknown strategy %q: must be static or nominatim", strategy)
			}

			res, err := resolver.Resolve(cmd.Context(), domain.ResolveQuery{Coordinate: &c})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(map[string]any{
				"district":   res.District,
				"provenance": res.Provenance,
				"topic":      topicPrefix + string(res.District),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringVar(&strategy, "strategy", "static", "resolver strategy: static or nominatim")
	cmd.Flags().StringVar(&baseURL, "base-url", "https://nominatim.openstreetmap.org/reverse", "reverse-geocoding endpoint")
	cmd.Flags().StringVar(&userAgent, "user-agent", "sos-alert-service/districtctl", "User-Agent for upstream requests")
	cmd.Flags().DurationVar(&timeout, "timeout", 2500*time.Millisecond, "upstream request timeout")
	cmd.Flags().StringVar(&defaultDistrict, "default-district", "unknown_district", "fallback identifier")
	cmd.Flags().StringVar(&topicPrefix, "topic-prefix", "district-", "topic name prefix")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
