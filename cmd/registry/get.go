package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rzbill/registry/pkg/store"
	"github.com/rzbill/registry/pkg/types"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <apiVersion> <kind> <name>",
		Short: "Read the resource stored under a reference",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := types.Ref{APIVersion: args[0], Kind: args[1], Name: args[2]}

			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := store.Read[json.RawMessage](cmd.Context(), s, ref)
			if err != nil {
				return err
			}

			var pretty []byte
			if pretty, err = json.MarshalIndent(doc, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}
}
