package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bnei-Baruch/udpserial-panel/api"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Args:  cobra.NoArgs,
	RunE:  printRoutes,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve PATH",
	Short: "Resolve a panel path and print the navigation state",
	Args:  cobra.ExactArgs(1),
	RunE:  resolve,
}

func init() {
	rootCmd.AddCommand(routesCmd, resolveCmd)
}

func printRoutes(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTARGET\tNAME")
	for _, e := range table.Entries() {
		target := e.View.String()
		if e.IsRedirect() {
			target = "-> " + e.RedirectTo
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Path, target, e.Name)
	}
	fmt.Fprintf(tw, "\nlink active class: %s\n", table.LinkActiveClass())
	return tw.Flush()
}

func resolve(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	state, err := table.Navigate(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(api.ResolveResponse{
		NavigationState: state,
		View:            state.View(),
		Name:            state.Entry.Name,
		LinkActiveClass: table.LinkActiveClass(),
	})
}
