package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Duaa3/seat-swarm/pkg/core/services"
	"github.com/Duaa3/seat-swarm/pkg/predict"
)

// listFields are always read as comma separated lists
var listFields = map[string]bool{"preferred_days": true}

// recordFlag collects repeated key=value pairs into a prediction record.
// Values are read as numbers or booleans where possible; values containing
// commas become lists.
type recordFlag struct {
	record predict.Record
}

var _ pflag.Value = (*recordFlag)(nil)

func (f *recordFlag) String() string {
	pairs := make([]string, 0, len(f.record))
	for key, value := range f.record {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	return strings.Join(pairs, " ")
}

func (f *recordFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}

	if f.record == nil {
		f.record = predict.Record{}
	}
	f.record[key] = parseRecordValue(strings.TrimSpace(value), listFields[key])
	return nil
}

func (f *recordFlag) Type() string {
	return "key=value"
}

func parseRecordValue(value string, list bool) any {
	if list || strings.Contains(value, ",") {
		items := []any{}
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

// PredictCmd creates the predict command
func PredictCmd(app *AppContext) *cobra.Command {
	record := &recordFlag{}

	kinds := make([]string, len(services.PredictionKinds))
	for i, kind := range services.PredictionKinds {
		kinds[i] = string(kind)
	}

	cmd := &cobra.Command{
		Use:       "predict <" + strings.Join(kinds, "|") + ">",
		Short:     "Run a single prediction with the loaded models",
		Example:   "  predict onsite_ratio --set commute_minutes=45 --set preferred_days=Mon,Wed",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Planner.Predict(app.Ctx, services.PredictionKind(args[0]), record.record)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().Var(record, "set", "Record field as key=value (repeatable)")
	return cmd
}
