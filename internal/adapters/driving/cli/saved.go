package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

var (
	savedTitle    string
	savedMax      int
	savedCurrency string
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved reports",
	Long: `Save report definitions and run them again later.

Saved reports belong to the signed-in account.`,
}

var savedAddCmd = &cobra.Command{
	Use:   "add <kind> [video-id]",
	Short: "Save a report definition",
	Long: `Save a report definition.

Kinds: revenue, growth, top, video, formats. The video kind takes the
video ID as a second argument.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSavedAdd,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports",
	RunE:  runSavedList,
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedDelete,
}

var savedRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedRun,
}

var savedWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the saved report list whenever it changes",
	RunE:  runSavedWatch,
}

func init() {
	addRangeFlags(savedAddCmd)
	savedAddCmd.Flags().StringVarP(&savedTitle, "title", "t", "", "report title")
	savedAddCmd.Flags().IntVarP(&savedMax, "max", "n", 0, "video limit for top and formats")
	savedAddCmd.Flags().StringVar(&savedCurrency, "currency", "", "conversion currency for revenue")

	savedCmd.AddCommand(savedAddCmd, savedListCmd, savedDeleteCmd, savedRunCmd, savedWatchCmd)
	rootCmd.AddCommand(savedCmd)
}

func requireSaved(ctx context.Context) error {
	if savedReportService == nil {
		return errors.New("saved report service not configured")
	}
	return ensureSignedIn(ctx)
}

func runSavedAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireSaved(ctx); err != nil {
		return err
	}

	kind := domain.ReportKind(strings.ToLower(args[0]))
	r, err := rangeFromFlags(time.Now())
	if err != nil {
		return err
	}

	params := map[string]string{}
	if len(args) == 2 {
		params[domain.ParamVideoID] = args[1]
	}
	if savedMax > 0 {
		params[domain.ParamMax] = strconv.Itoa(savedMax)
	}
	if c := strings.TrimSpace(savedCurrency); c != "" {
		params[domain.ParamCurrency] = strings.ToUpper(c)
	}

	saved, err := savedReportService.Save(ctx, kind, savedTitle, r, params)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, saved)
	}
	cmd.Printf("Saved %q (%s)\n", saved.Title, saved.ID)
	return nil
}

func runSavedList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireSaved(ctx); err != nil {
		return err
	}

	reports, err := savedReportService.List(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, reports)
	}
	printSavedReports(cmd, reports)
	return nil
}

func runSavedDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireSaved(ctx); err != nil {
		return err
	}

	if err := savedReportService.Delete(ctx, args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("saved report %s not found", args[0])
		}
		return err
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runSavedRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireSaved(ctx); err != nil {
		return err
	}

	reports, err := savedReportService.List(ctx)
	if err != nil {
		return err
	}
	for _, sr := range reports {
		if sr.ID == args[0] {
			if !jsonOutput {
				cmd.Printf("%s\n\n", sr.Title)
			}
			return renderKind(cmd, sr.Kind, sr.Range, sr.Params)
		}
	}
	return fmt.Errorf("saved report %s not found", args[0])
}

func runSavedWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireSaved(ctx); err != nil {
		return err
	}

	updates, err := savedReportService.Watch(ctx)
	if err != nil {
		return err
	}
	for reports := range updates {
		if jsonOutput {
			if err := printJSON(cmd, reports); err != nil {
				return err
			}
			continue
		}
		cmd.Printf("[%s] %d saved report(s)\n", time.Now().Format(time.TimeOnly), len(reports))
		printSavedReports(cmd, reports)
	}
	return nil
}

func printSavedReports(cmd *cobra.Command, reports []domain.SavedReport) {
	if len(reports) == 0 {
		cmd.Println("No saved reports.")
		return
	}

	t := newTable("ID", "KIND", "TITLE", "RANGE", "CREATED")
	for _, sr := range reports {
		t.Row(sr.ID, string(sr.Kind), sr.Title, sr.Range.String(), sr.CreatedAt.Local().Format(time.DateTime))
	}
	cmd.Println(t.Render())
}
