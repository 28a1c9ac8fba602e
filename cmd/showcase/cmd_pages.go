package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/forgeline/kinetic"
	"github.com/forgeline/kinetic/internal/site"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the pages in the site config",
	Args:  cobra.NoArgs,
	RunE:  listPages,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site config and build every page",
	Args:  cobra.NoArgs,
	RunE:  validateSite,
}

func listPages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tBLOCKS")
	for _, p := range cfg.Pages {
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.Name, p.Title, len(p.Blocks))
	}
	return w.Flush()
}

// validateSite builds each page into a throwaway scene so layout problems
// show up as well as config errors.
func validateSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range cfg.Pages {
		s := kinetic.NewScene(float64(cfg.Window.Width), float64(cfg.Window.Height))
		st, err := site.New(s, cfg, p.Name, logger)
		if err != nil {
			return err
		}
		stats := st.Stats()
		fmt.Fprintf(out, "%-10s sections=%d reveals=%d parallax=%d tilts=%d hover=%d marquees=%d floats=%d buttons=%d\n",
			p.Name, stats.Sections, stats.Reveals, stats.Parallax, stats.Tilts,
			stats.HoverCards, stats.Marquees, stats.Floats, stats.Buttons)
	}
	fmt.Fprintf(out, "%s: ok\n", configPath)
	return nil
}
