// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
	"github.com/gasguard/gasguard/internal/netconfig"
	"github.com/gasguard/gasguard/internal/registry"
)

var (
	presetRegistryFlag string
	presetNameFlag     string
	presetFromFlag     string
	presetBaseFlag     string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved custom configuration presets",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Validate and save a configuration preset",
	Long: `Save stores a named configuration in the local registry. The config is
read from a JSON file (--from); omitted fields fall back to the --base
built-in preset. Invalid configurations (any non-positive limit) are
rejected.`,
	RunE: runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := registry.Open(presetRegistryFlag)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No saved presets.")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%-20s %-14s saved %s\n", info.Name, info.Version, info.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := registry.Open(presetRegistryFlag)
		if err != nil {
			return err
		}
		defer store.Close()

		cfg, err := store.Load(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := registry.Open(presetRegistryFlag)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Delete(args[0])
	},
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	if presetNameFlag == "" {
		return fmt.Errorf("--name is required")
	}
	if presetFromFlag == "" {
		return fmt.Errorf("--from is required")
	}

	cfg, err := loadConfigFile(presetFromFlag, presetBaseFlag)
	if err != nil {
		return err
	}

	store, err := registry.Open(presetRegistryFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(presetNameFlag, cfg); err != nil {
		return err
	}
	fmt.Printf("Preset %q saved (version %s).\n", presetNameFlag, cfg.Version)
	return nil
}

// loadConfigFile reads a config JSON file on top of a built-in base preset,
// so partial files only need the fields they override.
func loadConfigFile(path, base string) (costmodel.Config, error) {
	cfg := costmodel.DefaultConfig()
	if base != "" {
		var err error
		cfg, err = resolveBasePreset(base)
		if err != nil {
			return costmodel.Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return costmodel.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return costmodel.Config{}, errors.WrapUnmarshalFailed(err, path)
	}
	return cfg, nil
}

// resolveBasePreset looks up base among saved presets first, then the
// built-in network presets.
func resolveBasePreset(base string) (costmodel.Config, error) {
	store, err := registry.Open(presetRegistryFlag)
	if err == nil {
		defer store.Close()
		if cfg, loadErr := store.Load(base); loadErr == nil {
			return cfg, nil
		}
	}

	return netconfig.Get(base)
}

func init() {
	presetCmd.PersistentFlags().StringVar(&presetRegistryFlag, "registry", "", "Path to the preset registry database")
	presetSaveCmd.Flags().StringVar(&presetNameFlag, "name", "", "Preset name")
	presetSaveCmd.Flags().StringVar(&presetFromFlag, "from", "", "Path to a config JSON file")
	presetSaveCmd.Flags().StringVar(&presetBaseFlag, "base", "", "Built-in preset or saved preset to inherit from")

	presetCmd.AddCommand(presetSaveCmd, presetListCmd, presetShowCmd, presetDeleteCmd)
	rootCmd.AddCommand(presetCmd)
}
