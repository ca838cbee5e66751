package cmd

import (
	"encoding/json"
	"fmt"

	"storefront_tracking/internal/domain/entities"

	"github.com/spf13/cobra"
)

var consentCookie string

var consentModeCmd = &cobra.Command{
	Use:   "consent-mode [category...]",
	Short: "Print the Google Consent Mode flags for granted categories",
	Long: `Maps consent banner categories to Google Consent Mode storage flags.

Categories come from the arguments or from a raw cc_cookie value.

Examples:
  storefront-tracking consent-mode analytics
  storefront-tracking consent-mode --cookie '{"categories":["necessary","marketing"]}'`,
	RunE: runConsentMode,
}

func init() {
	consentModeCmd.Flags().StringVar(&consentCookie, "cookie", "", "raw cc_cookie value")
}

func runConsentMode(cmd *cobra.Command, args []string) error {
	set := entities.NewConsentSet(args...)
	if consentCookie != "" {
		parsed, err := entities.ParseConsentCookie(consentCookie)
		if err != nil {
			return err
		}
		set = parsed
	}

	out := struct {
		Categories  []entities.ConsentCategory `json:"categories"`
		ConsentMode map[string]string          `json:"consent_mode"`
	}{
		Categories:  set.Categories(),
		ConsentMode: set.ConsentMode(),
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
