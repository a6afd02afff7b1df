package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/export"
)

var coverletterCmd = &cobra.Command{
	Use:     "coverletter",
	Aliases: []string{"letter"},
	Short:   "Edit the cover letter",
}

var coverletterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cover letter as plain text",
	RunE:  runCoverletterShow,
}

var coverletterSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a cover letter field",
	Long:  "Set one flat field of the cover letter. Fields: date, recipientName, recipientTitle, companyName, salutation, signoff, jobDescription, tone. Tones: Professional, Confident, Humble, Creative.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoverletterSet,
}

var coverletterParagraphCmd = &cobra.Command{
	Use:   "paragraph",
	Short: "Manage body paragraphs",
}

var coverletterParagraphAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a body paragraph",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverletterParagraphAdd,
}

var coverletterParagraphSetCmd = &cobra.Command{
	Use:   "set <index> <text>",
	Short: "Replace the paragraph at a zero-based index",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoverletterParagraphSet,
}

var coverletterParagraphRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Delete the paragraph at a zero-based index",
	Long:  "Delete the paragraph at a zero-based index. The body always keeps at least one paragraph.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverletterParagraphRemove,
}

func init() {
	coverletterParagraphCmd.AddCommand(coverletterParagraphAddCmd)
	coverletterParagraphCmd.AddCommand(coverletterParagraphSetCmd)
	coverletterParagraphCmd.AddCommand(coverletterParagraphRemoveCmd)
	coverletterCmd.AddCommand(coverletterShowCmd)
	coverletterCmd.AddCommand(coverletterSetCmd)
	coverletterCmd.AddCommand(coverletterParagraphCmd)
	rootCmd.AddCommand(coverletterCmd)
}

func runCoverletterShow(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}
	r, err := loadResume(s)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, export.LetterText(&c, r.Basics))
	return nil
}

func runCoverletterSet(_ *cobra.Command, args []string) error {
	field, value := args[0], args[1]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}
	if err := editor.SetCoverLetterField(&c, field, value); err != nil {
		return err
	}
	if err := saveCoverLetter(s, c); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Set %s\n", field)
	return nil
}

func runCoverletterParagraphAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}
	editor.AddParagraph(&c, args[0])
	if err := saveCoverLetter(s, c); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added paragraph %d\n", len(c.Body)-1)
	return nil
}

func runCoverletterParagraphSet(_ *cobra.Command, args []string) error {
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}
	if err := editor.UpdateParagraph(&c, i, args[1]); err != nil {
		return err
	}
	if err := saveCoverLetter(s, c); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Updated paragraph %d\n", i)
	return nil
}

func runCoverletterParagraphRemove(_ *cobra.Command, args []string) error {
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}
	if err := editor.RemoveParagraph(&c, i); err != nil {
		return err
	}
	if err := saveCoverLetter(s, c); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed paragraph %d\n", i)
	return nil
}
