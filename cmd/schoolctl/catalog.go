package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
)

// listFlags are shared by list subcommands that accept query filters.
type listFlags struct {
	filters  map[string]string
	page     int
	pageSize int
}

func (l *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringToStringVar(&l.filters, "filter", nil, "Query filter key=value (repeatable)")
	cmd.Flags().IntVar(&l.page, "page", 0, "Page number when the server paginates")
	cmd.Flags().IntVar(&l.pageSize, "page-size", 0, "Page size when paginating")
}

func (l *listFlags) params() client.Params {
	p := client.Params{}
	for k, v := range l.filters {
		p[k] = v
	}
	if l.page > 0 {
		p["page"] = strconv.Itoa(l.page)
	}
	if l.pageSize > 0 {
		p["page_size"] = strconv.Itoa(l.pageSize)
	}
	return p
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (a *app) newCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalogue",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List courses (filters: category, difficulty_level, status)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				courses, err := c.GetCourses(ctx, lf.params())
				if err != nil {
					return err
				}
				return printJSON(cmd, courses)
			})
		},
	}
	lf.register(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one course with its modules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				course, err := c.GetCourse(ctx, id)
				if err != nil {
					return err
				}
				return printJSON(cmd, course)
			})
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search course titles and descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				courses, err := c.SearchCourses(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, courses)
			})
		},
	}

	popular := &cobra.Command{
		Use:   "popular",
		Short: "List the most enrolled courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				courses, err := c.GetPopularCourses(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, courses)
			})
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List course categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				cats, err := c.GetCourseCategories(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, cats)
			})
		},
	}

	cmd.AddCommand(list, get, search, popular, categories)
	return cmd
}

func (a *app) newStudentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Student records",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List students (filters: is_active, gender, education_level)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				students, err := c.GetStudents(ctx, lf.params())
				if err != nil {
					return err
				}
				return printJSON(cmd, students)
			})
		},
	}
	lf.register(list)

	cmd.AddCommand(list)
	return cmd
}

func (a *app) newEnrollmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrollments",
		Short: "List the logged-in student's enrollments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				enrollments, err := c.GetMyCourses(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, enrollments)
			})
		},
	}
}
