package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
)

func (a *app) newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Employer job postings",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List job postings (filters: employment_type, location, status)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				jobs, err := c.GetJobPostings(ctx, lf.params())
				if err != nil {
					return err
				}
				return printJSON(cmd, jobs)
			})
		},
	}
	lf.register(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				job, err := c.GetJobPosting(ctx, id)
				if err != nil {
					return err
				}
				return printJSON(cmd, job)
			})
		},
	}

	var req client.JobApplicationRequest
	var available string
	apply := &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply for a job posting as the logged-in student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if req.AvailabilityDate, err = parseDate("available-from", available); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				app, err := c.ApplyForJob(ctx, id, req)
				if err != nil {
					return err
				}
				return printJSON(cmd, app)
			})
		},
	}
	apply.Flags().StringVar(&req.CoverLetter, "cover-letter", "", "Cover letter text")
	apply.Flags().StringVar(&req.ExpectedSalary, "expected-salary", "", "Expected salary")
	apply.Flags().StringVar(&available, "available-from", "", "Availability date (YYYY-MM-DD)")

	cmd.AddCommand(list, get, apply)
	return cmd
}

func (a *app) newCertificatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "Issued certificates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the logged-in user's certificates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				certs, err := c.GetMyCertificates(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, certs)
			})
		},
	}

	verify := &cobra.Command{
		Use:   "verify <code>",
		Short: "Check a certificate by its verification code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				cert, err := c.VerifyCertificate(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, cert)
			})
		},
	}

	cmd.AddCommand(list, verify)
	return cmd
}
