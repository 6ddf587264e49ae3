package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ideapops/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command operates on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn resolves the flag to a canonical day string. Empty input stays
// empty so callers can default to today.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" || o.OnString == "today" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return timeutil.Day(t), nil
}
