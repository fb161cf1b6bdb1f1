// Command suggest asks one question on the terminal, offering the given
// candidates as suggestions, and prints the chosen one on stdout.
//
//	suggest --label "Branch" $(git branch --format='%(refname:short)')
//	suggest --candidates regions.yaml --fuzzy
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/suggest"
	"github.com/urfave/cli/v3"
)

// exitInterrupted follows the shell convention for SIGINT.
const exitInterrupted = 130

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	var (
		label          string
		candidatesPath string
		useFuzzy       bool
		useFiles       bool
		style          string
		theme          string
		maxSuggestions int
	)

	return &cli.Command{
		Name:      "suggest",
		Usage:     "Ask for a value with type-to-filter suggestions",
		ArgsUsage: "[candidate ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "label",
				Aliases:     []string{"l"},
				Usage:       "text shown before the input",
				Value:       "Select",
				Destination: &label,
			},
			&cli.StringFlag{
				Name:        "candidates",
				Aliases:     []string{"c"},
				Usage:       "file with candidates (YAML list, YAML {candidates: [...]}, or one per line)",
				Destination: &candidatesPath,
			},
			&cli.BoolFlag{Name: "fuzzy", Usage: "rank candidates by fuzzy match instead of prefix", Destination: &useFuzzy},
			&cli.BoolFlag{Name: "files", Usage: "suggest file system paths instead of candidates", Destination: &useFiles},
			&cli.StringFlag{Name: "style", Usage: "input display: default, password or invisible", Value: "default", Destination: &style},
			&cli.StringFlag{Name: "theme", Usage: "color theme: default, dark or plain", Value: "default", Destination: &theme},
			&cli.IntFlag{Name: "max", Usage: "suggestion rows shown at once (0 = as many as fit)", Destination: &maxSuggestions},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, ok := suggest.Styles[style]; !ok {
				return cli.Exit(fmt.Sprintf("error: unknown style %q", style), 1)
			}
			scheme, ok := suggest.Themes[theme]
			if !ok {
				return cli.Exit(fmt.Sprintf("error: unknown theme %q", theme), 1)
			}

			candidates := cmd.Args().Slice()
			if candidatesPath != "" {
				loaded, err := loadCandidates(candidatesPath)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				candidates = append(candidates, loaded...)
			}

			filter := suggest.NewPrefixFilter(candidates)
			switch {
			case useFiles:
				filter = suggest.NewFileFilter()
			case useFuzzy:
				filter = suggest.NewFuzzyFilter(candidates)
			}

			p, err := suggest.New(label,
				suggest.WithSuggest(filter),
				suggest.WithStyle(style),
				suggest.WithColorScheme(scheme),
				suggest.WithMaxSuggestions(maxSuggestions),
			)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer p.Close()

			result, err := p.RunWithContext(ctx)
			if errors.Is(err, suggest.ErrInterrupted) || errors.Is(err, suggest.ErrEOF) {
				return cli.Exit("", exitInterrupted)
			}
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, result)
			return err
		},
	}
}
