package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rzbill/registry/pkg/log"
	"github.com/rzbill/registry/pkg/types"
)

// manifest is the YAML shape of a resource document on disk. The spec payload
// stays opaque; it is carried into the store as a generic resource.
type manifest struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Metadata   struct {
		Name        string            `yaml:"name"`
		Labels      map[string]string `yaml:"labels"`
		Annotations map[string]string `yaml:"annotations"`
		OwnerRef    *types.Ref        `yaml:"ownerRef"`
	} `yaml:"metadata"`
	Spec map[string]any `yaml:"spec"`
}

func newApplyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Write a resource from a YAML manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, file)
		},
	}

	cmd.Flags().StringVarP(&file, "filename", "f", "", "manifest file to apply")
	cmd.MarkFlagRequired("filename")

	return cmd
}

func runApply(cmd *cobra.Command, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	res := types.NewGeneric(
		types.ResourceGroup{APIVersion: m.APIVersion, Kind: m.Kind},
		m.Metadata.Name,
		m.Spec,
	)
	res.Metadata.Labels = m.Metadata.Labels
	res.Metadata.Annotations = m.Metadata.Annotations
	res.Metadata.OwnerRef = m.Metadata.OwnerRef

	if err := res.Validate(); err != nil {
		return err
	}

	s, logger, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Write(cmd.Context(), res); err != nil {
		return err
	}
	logger.Info("wrote resource", log.Stringer("ref", res.ResourceRef()))

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "applied %s\n", res.ResourceRef())
	return nil
}
