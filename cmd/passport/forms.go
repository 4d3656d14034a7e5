package main

import (
	"fmt"

	"career-passport/internal/domain"

	"github.com/spf13/cobra"
)

func (c *cli) feedbackCmd() *cobra.Command {
	var form domain.FeedbackForm
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send feedback about Career Passport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "Submitting...")
			if err := c.app.feedback.SubmitFeedback(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Thank you for your feedback!")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Your email address")
	cmd.Flags().StringVarP(&form.Message, "message", "m", "", "Your feedback")
	return cmd
}

func (c *cli) contactCmd() *cobra.Command {
	var form domain.ContactForm
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact the Career Passport team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.feedback.SubmitContact(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Message sent. We will get back to you soon.")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "Subject")
	cmd.Flags().StringVarP(&form.Message, "message", "m", "", "Message")
	return cmd
}
