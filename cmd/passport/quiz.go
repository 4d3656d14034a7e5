package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"career-passport/internal/domain"
	"career-passport/internal/dto"
	"career-passport/internal/quiz"

	"github.com/spf13/cobra"
)

func (c *cli) quizCmd() *cobra.Command {
	var answers string
	cmd := &cobra.Command{
		Use:   "quiz [interest]",
		Short: "Take the stream selection quiz",
		Long: "Take the stream selection quiz for an interest. Without --answers the quiz is interactive: " +
			"type an option number, b to go back or q to quit.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.listInterests(cmd)
			}
			interest := args[0]
			if answers != "" {
				return c.evaluateQuiz(cmd, interest, answers)
			}
			return c.runQuiz(cmd, interest)
		},
	}
	cmd.Flags().StringVarP(&answers, "answers", "a", "", "Comma separated option numbers, one per question (1-based)")
	return cmd
}

func (c *cli) listInterests(cmd *cobra.Command) error {
	interests, err := render(cmd.Context(), c.app.quiz.ListInterests)
	if err != nil {
		return err
	}
	if c.jsonOutput {
		return c.printJSON(cmd, interests)
	}
	rows := make([][]string, len(interests))
	for i, in := range interests {
		rows[i] = []string{in.ID, in.Name, in.Description}
	}
	return table(cmd.OutOrStdout(), "INTEREST\tNAME\tDESCRIPTION", rows)
}

func parseChoices(s string) ([]int, error) {
	parts := splitList(s)
	choices := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid answer %q", p))
		}
		choices[i] = n - 1
	}
	return choices, nil
}

func (c *cli) evaluateQuiz(cmd *cobra.Command, interest, answers string) error {
	choices, err := parseChoices(answers)
	if err != nil {
		return err
	}
	scores, err := render(cmd.Context(), func(ctx context.Context) ([]domain.StreamScore, error) {
		return c.app.quiz.Evaluate(ctx, interest, choices)
	})
	if err != nil {
		return err
	}
	return c.printResults(cmd, dto.NewQuizResultResponse(interest, nil, scores, quiz.TopN))
}

func (c *cli) runQuiz(cmd *cobra.Command, interest string) error {
	session, err := render(cmd.Context(), func(ctx context.Context) (*quiz.Session, error) {
		return c.app.quiz.StartQuiz(ctx, interest)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	for session.State() == quiz.StateInProgress {
		q, err := session.Current()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nQuestion %d of %d (%.0f%%)\n%s\n", session.Index()+1, session.Total(), session.Progress(), q.Question)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
		}
		prompt := "Choose 1-" + strconv.Itoa(len(q.Options))
		if session.HasPrev() {
			prompt += ", b = back"
		}
		fmt.Fprint(out, prompt+", q = quit: ")

		line, ok := readLine(in)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		switch line {
		case "q":
			fmt.Fprintln(out, "Quiz abandoned.")
			return nil
		case "b":
			if err := session.Previous(); err != nil {
				fmt.Fprintln(out, err)
			}
			continue
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			err = session.Select(n - 1)
		}
		if err != nil {
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(q.Options))
			continue
		}
		if err := session.Next(); err != nil {
			return err
		}
	}

	scores, err := session.Results()
	if err != nil {
		return err
	}
	return c.printResults(cmd, dto.NewQuizResultResponse(session.Topic(), session.Answers(), scores, quiz.TopN))
}

func readLine(s *bufio.Scanner) (string, bool) {
	if !s.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(s.Text())), true
}

func (c *cli) printResults(cmd *cobra.Command, res dto.QuizResultResponse) error {
	if c.jsonOutput {
		return c.printJSON(cmd, res)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nYour top streams for %s:\n", res.Interest)
	for i, r := range res.Recommendations {
		fmt.Fprintf(out, "%d. %s  %d%% (score %d)\n", i+1, r.Stream.Name, r.Percentage, r.Score)
		if r.Stream.Description != "" {
			fmt.Fprintf(out, "   %s\n", r.Stream.Description)
		}
		if len(r.Stream.Careers) > 0 {
			fmt.Fprintf(out, "   Careers: %s\n", strings.Join(r.Stream.Careers, ", "))
		}
	}
	return nil
}
