package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/tracker"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Track job applications",
	Long:  "Track job applications through the Wishlist, Applied, Interview, Offer, and Rejected pipeline stages.",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE:  runJobsList,
}

var jobsAddCmd = &cobra.Command{
	Use:   "add <company> <role>",
	Short: "Track a new application",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobsAdd,
}

var jobsMoveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Advance an application to a new stage",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobsMove,
}

var jobsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Stop tracking an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsRemove,
}

var (
	jobsStatus string
	jobsLink   string
	jobsNotes  string
)

func init() {
	jobsAddCmd.Flags().StringVar(&jobsStatus, "status", "", "Initial status (defaults to Applied)")
	jobsAddCmd.Flags().StringVar(&jobsLink, "link", "", "Posting URL")
	jobsAddCmd.Flags().StringVar(&jobsNotes, "notes", "", "Free-form notes")
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsAddCmd)
	jobsCmd.AddCommand(jobsMoveCmd)
	jobsCmd.AddCommand(jobsRemoveCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	jobs, err := tracker.New(s, rootProfile).List()
	if err != nil {
		return err
	}
	printer().PrintJobs(jobs)
	return nil
}

func runJobsAdd(_ *cobra.Command, args []string) error {
	job := tracker.Job{
		Company: args[0],
		Role:    args[1],
		Link:    jobsLink,
		Notes:   jobsNotes,
	}
	if jobsStatus != "" {
		status, err := tracker.ParseStatus(jobsStatus)
		if err != nil {
			return err
		}
		job.Status = status
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	added, err := tracker.New(s, rootProfile).Add(job)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Tracking %s at %s (%s, id %s)\n", added.Role, added.Company, added.Status, added.ID)
	return nil
}

func runJobsMove(_ *cobra.Command, args []string) error {
	id := args[0]
	status, err := tracker.ParseStatus(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	if err := tracker.New(s, rootProfile).Move(id, status); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Moved %s to %s\n", id, status)
	return nil
}

func runJobsRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	if err := tracker.New(s, rootProfile).Remove(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed %s\n", args[0])
	return nil
}
