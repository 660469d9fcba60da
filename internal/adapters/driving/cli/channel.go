package cli

import (
	"github.com/spf13/cobra"
)

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Show channel statistics",
	RunE:  runChannel,
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List recent uploads",
	RunE:  runVideos,
}

var videosMax int

func init() {
	videosCmd.Flags().IntVarP(&videosMax, "max", "n", 50, "maximum uploads to list (1-50)")
	rootCmd.AddCommand(channelCmd)
	rootCmd.AddCommand(videosCmd)
}

func runChannel(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireAnalytics(ctx); err != nil {
		return err
	}

	ch, err := analyticsService.Channel(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, ch)
	}
	printChannel(cmd, ch)
	return nil
}

func runVideos(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireAnalytics(ctx); err != nil {
		return err
	}

	videos, err := analyticsService.Videos(ctx, videosMax)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, videos)
	}
	printVideos(cmd, videos)
	return nil
}
