package cmd

import (
	"fmt"
	"io"

	"MoodFM/catalog"
	"MoodFM/model"

	"github.com/spf13/cobra"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "校验并汇总歌曲目录",
	Long:  `Load the catalog (built-in, CATALOG_PATH or --file), validate it and print per-mood song counts and total durations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.CatalogPath
		if catalogFile != "" {
			path = catalogFile
		}

		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		return printCatalogSummary(cmd.OutOrStdout(), cat)
	},
}

func printCatalogSummary(w io.Writer, cat *catalog.Catalog) error {
	for _, m := range cat.Moods() {
		songs := cat.SongsByMood(m.Name)
		total, err := model.TotalDuration(songs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-12s %3d songs  %8s  %s\n", m.Name, len(songs), model.FormatDuration(total), m.Description)
	}
	fmt.Fprintf(w, "%d songs in total\n", cat.Len())
	return nil
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "catalog file to validate (YAML or JSON)")
	rootCmd.AddCommand(catalogCmd)
}
