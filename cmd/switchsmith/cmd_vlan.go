package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/cli"
	"github.com/switchsmith/switchsmith/pkg/util"
	"github.com/switchsmith/switchsmith/pkg/vlan"
)

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "Inspect VLAN detection and naming",
}

var vlanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List VLANs detected from the plan's ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ports, err := expandPlan()
		if err != nil {
			return err
		}

		reg := vlan.NewRegistry()
		if _, err := vlan.Detect(ports, reg); err != nil {
			return fmt.Errorf("detecting VLANs: %w", err)
		}

		if reg.Len() == 0 {
			fmt.Println("No VLANs referenced by any port.")
			return nil
		}

		t := cli.NewTable("VLAN", "NAME")
		for _, e := range reg.Entries() {
			t.Row(strconv.Itoa(e.ID), e.Name)
		}
		t.Flush()
		return nil
	},
}

var vlanNameCmd = &cobra.Command{
	Use:   "name <id>",
	Short: "Show the default name for a VLAN ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("VLAN ID must be a number, got %q", args[0])
		}
		if err := util.ValidateVLANID(id); err != nil {
			return err
		}
		fmt.Println(vlan.DefaultName(id))
		return nil
	},
}

func init() {
	vlanCmd.AddCommand(vlanListCmd)
	vlanCmd.AddCommand(vlanNameCmd)
}
