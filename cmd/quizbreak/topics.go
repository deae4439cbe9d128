package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-breakout/internal/quiz"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [catalog]",
	Short: "List catalogs and their topics",
	Long: `Without arguments, lists the built-in catalogs. With a catalog name or a
catalog YAML file, lists its topics and answers.

Examples:
  quizbreak topics
  quizbreak topics aws
  quizbreak topics ./my-catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTopics,
}

func runTopics(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listCatalogs()
	}

	catalog, err := quiz.Resolve(args[0])
	if err != nil {
		return err
	}

	topics := catalog.Topics()
	idLen, answerLen := len("ID"), len("Answer")
	for _, t := range topics {
		idLen = max(idLen, len(t.ID))
		answerLen = max(answerLen, len(t.Answer))
	}

	fmt.Printf("Catalog %s (%d topics)\n\n", catalog.Name(), len(topics))
	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "ID", answerLen, "Answer", "Candidates")
	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "--", answerLen, "------", "----------")
	for _, t := range topics {
		fmt.Printf("  %-*s  %-*s  %s\n", idLen, t.ID, answerLen, t.Answer, strings.Join(t.Candidates, ", "))
	}
	return nil
}

func listCatalogs() error {
	names := quiz.List()
	if len(names) == 0 {
		fmt.Println("No catalogs available.")
		return nil
	}

	fmt.Println("Available catalogs:")
	fmt.Println()
	for _, name := range names {
		c, err := quiz.Open(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == quiz.DefaultCatalog {
			marker = "*"
		}
		fmt.Printf(" %s %-8s  %d topics\n", marker, name, c.Len())
	}

	fmt.Println()
	fmt.Println("Run 'quizbreak play --catalog <name>' to play a catalog.")
	return nil
}
