package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "passport",
		Short: "Career Passport",
		Long:  "Career Passport helps students explore careers, take a stream selection quiz and keep bookmarks of useful resources.",

		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Print results as JSON")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "Path to a config.yaml file")

	root.AddCommand(
		c.homeCmd(),
		c.careersCmd(),
		c.resourcesCmd(),
		c.storiesCmd(),
		c.multimediaCmd(),
		c.coachingCmd(),
		c.contentCmd(),
		c.quizCmd(),
		c.bookmarksCmd(),
		c.feedbackCmd(),
		c.contactCmd(),
	)
	return root
}
