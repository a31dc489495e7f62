package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/maritime/internal/validation"
	"evalgo.org/maritime/pkg/maritime/client"
)

var (
	validateRemote bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [type] [file]",
	Short: "Validate a ship, port or voyage JSON document",
	Long: `Validate a JSON document with the same rules the API applies on create.

Use "-" as the file to read from stdin.

Examples:
  maritime validate ship ship.json
  maritime validate voyage voyage.json --remote`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateRemote, "remote", false, "validate through the running server")
	validateCmd.Flags().StringVar(&queryAPIURL, "api-url", "", "server base URL for --remote")
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, filename := args[0], args[1]

	var (
		data []byte
		err  error
	)
	if filename == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var result *client.ValidationResult
	if validateRemote {
		c, err := newClient()
		if err != nil {
			return err
		}
		result, err = c.Validate(cmd.Context(), kind, data)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
	} else {
		local, err := validation.New().ValidateDocument(kind, data)
		if errors.Is(err, validation.ErrUnknownKind) {
			return fmt.Errorf("unknown record type: %s (use 'ship', 'port' or 'voyage')", kind)
		}
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		result = fromLocal(local)
	}

	return printValidation(cmd.OutOrStdout(), result)
}

// fromLocal converts an in-process result to the shape the server returns,
// so both paths print the same way.
func fromLocal(r *validation.ValidationResult) *client.ValidationResult {
	out := &client.ValidationResult{Valid: r.Valid}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, client.FieldError{Field: e.Field, Message: e.Message, Value: e.Value})
	}
	return out
}

func printValidation(out io.Writer, result *client.ValidationResult) error {
	if result.Valid {
		fmt.Fprintln(out, "✓ Document is valid")
		return nil
	}

	fmt.Fprintln(out, "✗ Validation failed:")
	for _, e := range result.Errors {
		if e.Value != nil {
			fmt.Fprintf(out, "  - %s: %s (value: %v)\n", e.Field, e.Message, e.Value)
		} else {
			fmt.Fprintf(out, "  - %s: %s\n", e.Field, e.Message)
		}
	}

	return fmt.Errorf("validation failed")
}
