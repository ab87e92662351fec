package main

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	service "github.com/okian/huntersfinds/internal/app"
	"github.com/okian/huntersfinds/internal/domain/modal"
	"github.com/spf13/cobra"
)

type browseStep struct {
	Action    string `json:"action" yaml:"action"`
	Showing   string `json:"showing" yaml:"showing"`
	Title     string `json:"title" yaml:"title"`
	Depth     int    `json:"depth" yaml:"depth"`
	CanGoBack bool   `json:"can_go_back" yaml:"can_go_back"`
}

// showing reports which surface the presentation layer would draw on top.
func showing(v service.View) (kind, title string) {
	switch {
	case v.Stack.Active:
		return string(v.Stack.Top.Kind()), v.Stack.Top.Title()
	case v.User.Visible():
		return "user", v.User.Value.Username
	case v.Dish.Visible():
		return "dish", v.Dish.Value.Name
	case v.Group.Visible():
		return "group", v.Group.Value.Name
	case v.Restaurant.Visible():
		return "restaurant", v.Restaurant.Value.Name
	default:
		return "none", ""
	}
}

func runBrowse(ctx context.Context, svc *service.Service, groupName string) ([]browseStep, error) {
	var steps []browseStep
	record := func(action string) {
		v := svc.Presentation(ctx)
		kind, title := showing(v)
		steps = append(steps, browseStep{Action: action, Showing: kind, Title: title, Depth: v.Stack.Depth, CanGoBack: v.Stack.CanGoBack})
	}

	if err := svc.OpenGroup(ctx, groupName); err != nil {
		return nil, err
	}
	record("open group")

	group := svc.Presentation(ctx).Group.Value
	if len(group.MembersList) == 0 || len(group.Dishes) == 0 {
		return steps, fmt.Errorf("group %q has no members or dishes to browse", group.Name)
	}

	member := svc.MemberFrame(ctx, group.MembersList[0])
	if err := svc.OpenNested(ctx, modal.GroupFrame(group), member); err != nil {
		return steps, err
	}
	record("open member")

	if err := svc.OpenNested(ctx, member, svc.GroupDishFrame(ctx, group.Dishes[0])); err != nil {
		return steps, err
	}
	record("open dish")

	svc.Back(ctx)
	record("back")
	svc.Back(ctx)
	record("back")
	return steps, nil
}

func (c *cli) browseCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Walk group -> member -> dish and back, printing what is shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.newService(timer.RealClock{})
			defer func() { _ = svc.Close() }()

			steps, err := runBrowse(cmd.Context(), svc, group)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.format, steps, func(w io.Writer) error {
				for _, s := range steps {
					back := ""
					if s.CanGoBack {
						back = " [back]"
					}
					if _, err := fmt.Fprintf(w, "%-12s %-6s %-24s depth %d%s\n", s.Action, s.Showing, s.Title, s.Depth, back); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&group, "group", "foodie squad", "group to start from")
	return cmd
}
