// seehuhn.de/go/xmpmeta - extract metadata from XMP packets
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/xmpmeta/registry"
)

func newNamespacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces",
		Short: "List the XMP namespaces which are extracted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, ns := range reg.Namespaces() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", registry.Prefix(ns), ns, len(reg.Properties(ns)))
			}
			return w.Flush()
		},
	}
}

func newPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties <prefix|namespace>",
		Short: "List the properties extracted from one namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			ns, ok := findNamespace(reg, args[0])
			if !ok {
				return fmt.Errorf("unknown namespace %q", args[0])
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, d := range reg.Properties(ns) {
				var extra []string
				if d.StructPart {
					extra = append(extra, "field")
				}
				if d.Name != d.Local {
					extra = append(extra, "as "+d.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					d.Local, d.Group.Tag(), d.Shape, d.Check, strings.Join(extra, " "))
			}
			return w.Flush()
		},
	}
}

func findNamespace(reg *registry.Registry, key string) (string, bool) {
	for _, ns := range reg.Namespaces() {
		if ns == key || registry.Prefix(ns) == key {
			return ns, true
		}
	}
	return "", false
}
