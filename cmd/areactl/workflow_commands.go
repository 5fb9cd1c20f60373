package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/areahq/areactl/draft"
	"github.com/areahq/areactl/model"
	"github.com/spf13/cobra"
)

func (a *app) workflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage your workflows",
	}
	cmd.AddCommand(
		a.workflowListCmd(),
		a.workflowGetCmd(),
		a.workflowCreateCmd(),
		a.workflowUpdateCmd(),
		a.workflowDeleteCmd(),
		a.workflowToggleCmd(),
	)
	return cmd
}

func (a *app) workflowListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your workflows",
		RunE: func(cmd *cobra.Command, args []string) error {
			workflows, err := a.workflows.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, wf := range workflows {
				state := "off"
				if wf.Active {
					state = "on"
				}
				fmt.Printf("%4d  %-3s  %-24s %d steps\n", wf.Id, state, wf.Name, len(wf.Steps))
			}
			return nil
		},
	}
}

func (a *app) workflowGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one workflow with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workflow id %q", args[0])
			}
			wf, err := a.workflows.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (id=%d, %s, active=%t)\n", wf.Name, wf.Id, wf.Visibility, wf.Active)
			for _, step := range wf.Steps {
				fmt.Printf("  [%s] %s.%s", step.Type, step.Service, step.Event)
				for key, value := range step.Params {
					fmt.Printf(" %s=%q", key, value)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func (a *app) workflowCreateCmd() *cobra.Command {
	var name, actionKey string
	var reactionKeys, params []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Compose and submit a new workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.registry.Load(ctx); err != nil {
				return err
			}
			d := draft.New()
			d.Name = name
			editor := draft.NewEditor(d, a.registry)

			action, err := a.addFromCatalog(cmd, editor, actionKey)
			if err != nil {
				return err
			}
			var reactionIds []string
			for _, key := range reactionKeys {
				reaction, err := a.addFromCatalog(cmd, editor, key)
				if err != nil {
					return err
				}
				reactionIds = append(reactionIds, reaction.Id)
			}
			for _, id := range reactionIds {
				if err := d.Connect(action.Id, id); err != nil {
					return err
				}
			}
			if err := applyParams(d, params); err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}
			created, err := a.workflows.Create(ctx, d.Id, d.Name, d.ToSteps())
			if err != nil {
				return err
			}
			fmt.Printf("created workflow %d (%s)\n", created.Id, created.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "workflow name")
	cmd.Flags().StringVar(&actionKey, "action", "", "trigger, as service.event from the catalog")
	cmd.Flags().StringArrayVar(&reactionKeys, "reaction", nil, "reaction, as service.event (repeatable)")
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter, as service.event:key=value (repeatable)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("action")
	cmd.MarkFlagRequired("reaction")
	return cmd
}

func (a *app) addFromCatalog(cmd *cobra.Command, editor *draft.Editor, key string) (*draft.Node, error) {
	entry, ok := a.catalog.Lookup(cmd.Context(), key)
	if !ok {
		return nil, fmt.Errorf("no catalog entry %s", key)
	}
	return editor.Add(entry)
}

// applyParams parses service.event:key=value settings and merges each into
// every matching node.
func applyParams(d *draft.Draft, params []string) error {
	for _, raw := range params {
		nodeKey, assignment, ok := strings.Cut(raw, ":")
		if !ok {
			return fmt.Errorf("invalid --param %q, want service.event:key=value", raw)
		}
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("invalid --param %q, want service.event:key=value", raw)
		}
		matched := false
		for _, node := range d.Nodes() {
			if node.Service+"."+node.Event != nodeKey {
				continue
			}
			if err := d.UpdateParams(node.Id, map[string]string{key: value}); err != nil {
				return err
			}
			matched = true
		}
		if !matched {
			return fmt.Errorf("no node %s in draft", nodeKey)
		}
	}
	return nil
}

func (a *app) workflowUpdateCmd() *cobra.Command {
	var name string
	var params []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a workflow's name or parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workflow id %q", args[0])
			}
			wf, err := a.workflows.Get(ctx, id)
			if err != nil {
				return err
			}
			d := draft.FromSteps(wf)
			d.BindSpecs(func(key string) (model.CatalogEntry, bool) {
				return a.catalog.Lookup(ctx, key)
			})
			if name != "" {
				d.Name = name
			}
			if err := applyParams(d, params); err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}
			updated, err := a.workflows.Update(ctx, d.Id, id, d.Name, d.ToSteps())
			if err != nil {
				return err
			}
			fmt.Printf("updated workflow %d (%s)\n", updated.Id, updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new workflow name")
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter, as service.event:key=value (repeatable)")
	return cmd
}

func (a *app) workflowDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workflow id %q", args[0])
			}
			if err := a.workflows.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted workflow %d\n", id)
			return nil
		},
	}
}

func (a *app) workflowToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a workflow between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workflow id %q", args[0])
			}
			active, err := a.workflows.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "inactive"
			if active {
				state = "active"
			}
			fmt.Printf("workflow %d is now %s\n", id, state)
			return nil
		},
	}
}
