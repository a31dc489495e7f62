package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"evalgo.org/maritime/models"
	"evalgo.org/maritime/pkg/maritime/client"
)

var (
	// Query flags
	queryAPIURL  string
	queryFormat  string
	queryTimeout time.Duration

	// Query voyages flags
	queryVoyagesPort uint
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Read records from a running server",
	Long: `Read ships, ports, voyages and statistics through the REST API.

Examples:
  maritime query ships
  maritime query voyages --format json
  maritime query voyages --port 103
  maritime query countries --api-url http://maritime.internal:8080
  maritime query dashboard --format yaml`,
}

var queryShipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List ships",
	Args:  cobra.NoArgs,
	RunE:  runQueryShips,
}

var queryPortsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List ports",
	Args:  cobra.NoArgs,
	RunE:  runQueryPorts,
}

var queryVoyagesCmd = &cobra.Command{
	Use:   "voyages",
	Short: "List voyages with their ports",
	Args:  cobra.NoArgs,
	RunE:  runQueryVoyages,
}

var queryCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Countries visited in the last year",
	Args:  cobra.NoArgs,
	RunE:  runQueryCountries,
}

var queryDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard summary",
	Args:  cobra.NoArgs,
	RunE:  runQueryDashboard,
}

func init() {
	queryCmd.AddCommand(queryShipsCmd)
	queryCmd.AddCommand(queryPortsCmd)
	queryCmd.AddCommand(queryVoyagesCmd)
	queryCmd.AddCommand(queryCountriesCmd)
	queryCmd.AddCommand(queryDashboardCmd)

	queryVoyagesCmd.Flags().UintVar(&queryVoyagesPort, "port", 0, "only voyages departing from or arriving at this port id")

	queryCmd.PersistentFlags().StringVar(&queryAPIURL, "api-url", "", "server base URL (default: from server.host and server.port)")
	queryCmd.PersistentFlags().StringVarP(&queryFormat, "format", "o", "table", "output format (table, json, yaml)")
	queryCmd.PersistentFlags().DurationVar(&queryTimeout, "timeout", 30*time.Second, "request timeout")
}

func newClient() (*client.Client, error) {
	apiURL := queryAPIURL
	if apiURL == "" {
		host := cfg.Server.Host
		if host == "" || host == "0.0.0.0" {
			host = "localhost"
		}
		scheme := "http"
		if cfg.Server.TLSEnabled {
			scheme = "https"
		}
		apiURL = fmt.Sprintf("%s://%s:%d", scheme, host, cfg.Server.Port)
	}
	return client.New(apiURL, client.WithTimeout(queryTimeout))
}

// query runs fetch against a fresh client and prints the result in the
// requested format. table renders the table view.
func query[T any](cmd *cobra.Command, fetch func(*client.Client, context.Context) (T, error), table func(io.Writer, T)) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := fetch(c, cmd.Context())
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), queryFormat, data, table)
}

func printResult[T any](w io.Writer, format string, data T, table func(io.Writer, T)) error {
	switch strings.ToLower(format) {
	case "json":
		return printJSON(w, data)
	case "yaml", "yml":
		return printYAML(w, data)
	case "table", "":
		table(w, data)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (use 'table', 'json' or 'yaml')", format)
	}
}

func runQueryShips(cmd *cobra.Command, args []string) error {
	return query(cmd, (*client.Client).ListShips, printShips)
}

func runQueryPorts(cmd *cobra.Command, args []string) error {
	return query(cmd, (*client.Client).ListPorts, printPorts)
}

func runQueryVoyages(cmd *cobra.Command, args []string) error {
	if queryVoyagesPort != 0 {
		port := queryVoyagesPort
		return query(cmd, func(c *client.Client, ctx context.Context) ([]models.Voyage, error) {
			return c.ListPortVoyages(ctx, port)
		}, printVoyages)
	}
	return query(cmd, (*client.Client).ListVoyages, printVoyages)
}

func runQueryCountries(cmd *cobra.Command, args []string) error {
	return query(cmd, (*client.Client).CountriesVisitedLastYear, printCountries)
}

func runQueryDashboard(cmd *cobra.Command, args []string) error {
	return query(cmd, (*client.Client).Dashboard, printDashboard)
}

func printShips(out io.Writer, ships []models.Ship) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMAX SPEED (KN)")
	for _, s := range ships {
		fmt.Fprintf(w, "%d\t%s\t%g\n", s.ID, s.Name, s.MaxSpeed)
	}
	w.Flush()
	fmt.Fprintf(out, "\nTotal: %d ships\n", len(ships))
}

func printPorts(out io.Writer, ports []models.Port) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOUNTRY")
	for _, p := range ports {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Country)
	}
	w.Flush()
	fmt.Fprintf(out, "\nTotal: %d ports\n", len(ports))
}

func printVoyages(out io.Writer, voyages []models.Voyage) {
	port := func(p *models.Port, id uint) string {
		if p == nil {
			return fmt.Sprintf("#%d", id)
		}
		return fmt.Sprintf("%s (%s)", p.Name, p.Country)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tFROM\tTO\tSTART\tEND")
	for i := range voyages {
		v := &voyages[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.Date().Format("2006-01-02"),
			port(v.DeparturePort, v.DeparturePortID),
			port(v.ArrivalPort, v.ArrivalPortID),
			v.VoyageStart.UTC().Format(time.RFC3339),
			v.VoyageEnd.UTC().Format(time.RFC3339),
		)
	}
	w.Flush()
	fmt.Fprintf(out, "\nTotal: %d voyages\n", len(voyages))
}

func printCountries(out io.Writer, countries []string) {
	if len(countries) == 0 {
		fmt.Fprintln(out, "No countries visited in the last year")
		return
	}
	fmt.Fprintln(out, "Countries visited in the last year:")
	for _, c := range countries {
		fmt.Fprintf(out, "  - %s\n", c)
	}
}

func printDashboard(out io.Writer, s *client.Summary) {
	fmt.Fprintln(out, "Fleet Dashboard")
	fmt.Fprintln(out, "===============")
	fmt.Fprintf(out, "\nShips: %d  Ports: %d  Voyages: %d\n", s.TotalShips, s.TotalPorts, s.TotalVoyages)

	fmt.Fprintf(out, "\nShips by speed:\n")
	for _, b := range s.ShipSpeeds {
		fmt.Fprintf(out, "  %-9s %d\n", b.Range, b.Count)
	}

	if len(s.PortsByCountry) > 0 {
		fmt.Fprintf(out, "\nPorts by country:\n")
		for _, c := range s.PortsByCountry {
			fmt.Fprintf(out, "  %s: %d\n", c.Country, c.Count)
		}
	}

	if len(s.VoyagesByMonth) > 0 {
		fmt.Fprintf(out, "\nVoyages by month:\n")
		for _, m := range s.VoyagesByMonth {
			fmt.Fprintf(out, "  %s: %d\n", m.Month, m.Count)
		}
	}

	fmt.Fprintf(out, "\nCountries visited (last year): %s\n", strings.Join(s.CountriesVisited, ", "))
}

// printJSON prints data as formatted JSON
func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printYAML prints data as YAML using the JSON field names of the API.
func printYAML(w io.Writer, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
