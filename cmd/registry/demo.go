package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rzbill/registry/pkg/log"
	"github.com/rzbill/registry/pkg/store"
	"github.com/rzbill/registry/pkg/types"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed a default project and namespace, then read them back",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
}

func runDemo(ctx context.Context) error {
	s, logger, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	project := types.NewProject("default")
	ns := types.NewNamespace(project.ResourceRef(), "default")

	if err := s.Write(ctx, project); err != nil {
		return err
	}
	logger.Info("wrote resource", log.Stringer("ref", project.ResourceRef()))
	if err := s.Write(ctx, ns); err != nil {
		return err
	}
	logger.Info("wrote resource", log.Stringer("ref", ns.ResourceRef()))

	read, err := store.Read[types.Resources](ctx, s, ns.ResourceRef())
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(read, "", "  ")
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("read %s:\n", read.ResourceRef())
	fmt.Println(string(pretty))
	return nil
}
