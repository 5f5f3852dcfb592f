package main

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var (
		sets    int
		tickets int
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate tickets and save them as PNG images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sets < 1 || sets > MaxSets {
				return fmt.Errorf("--sets must be between 1 and %d", MaxSets)
			}
			if tickets < 1 {
				return fmt.Errorf("--tickets must be positive")
			}

			flush, err := setupLogger(f.debug, "")
			if err != nil {
				return err
			}
			defer flush()

			a, err := newApp(f)
			if err != nil {
				return err
			}
			if outDir != "" {
				a.exporter.dir = outDir
			}

			var bar *progressbar.ProgressBar
			if tickets > 1 {
				bar = progressbar.Default(int64(tickets))
			}
			for i := range tickets {
				path, err := exportTicket(a, sets, batchName(a, i))
				if err != nil {
					log.Errorf("이미지 저장 실패: %v", err)
					return err
				}
				if bar != nil {
					bar.Add(1)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), a.loc.T(msgSaved, path))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&sets, "sets", "n", MaxSets, "number sets per ticket")
	cmd.Flags().IntVarP(&tickets, "tickets", "t", 1, "number of tickets to write")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	return cmd
}

// exportTicket fills a fresh ticket with n sets and saves it.
func exportTicket(a *app, n int, name string) (string, error) {
	t := NewTicket()
	for range n {
		if _, err := t.Generate(a.gen, 0, nil); err != nil {
			return "", err
		}
	}
	return a.exporter.Save(t.Sets(), name)
}

// batchName numbers every ticket after the first: lotto-ticket-<date>-2.png.
func batchName(a *app, i int) string {
	name := ExportFileName(a.exporter.now())
	if i == 0 {
		return name
	}
	return fmt.Sprintf("%s-%d.png", strings.TrimSuffix(name, ".png"), i+1)
}
