package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/view"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := opts.session(nil)
			if notice := session.Mount(cmd.Context()); notice.Kind == view.NoticeError {
				return errors.New(notice.Message)
			}
			return opts.printRecords(session.State().Records)
		},
	}
}

// draftFlags binds one flag per form field
type draftFlags struct {
	firstName, lastName, groupName, role, salary, defenseDate string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&f.groupName, "group", "", "Group name")
	cmd.Flags().StringVar(&f.role, "role", "", "Role")
	cmd.Flags().StringVar(&f.salary, "salary", "", "Expected salary (whole number)")
	cmd.Flags().StringVar(&f.defenseDate, "defense-date", "", "Expected date of defense (YYYY-MM-DD)")
}

// apply overwrites the draft fields whose flags were set
func (f *draftFlags) apply(cmd *cobra.Command, d view.Draft) view.Draft {
	set := func(flag string, target *string, value string) {
		if cmd.Flags().Changed(flag) {
			*target = value
		}
	}
	set("first-name", &d.FirstName, f.firstName)
	set("last-name", &d.LastName, f.lastName)
	set("group", &d.GroupName, f.groupName)
	set("role", &d.Role, f.role)
	set("salary", &d.ExpectedSalary, f.salary)
	set("defense-date", &d.ExpectedDateOfDefense, f.defenseDate)
	return d
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		Example: `  studentctl create --first-name Jane --last-name Smith --group G2 \
    --role Designer --salary 45000 --defense-date 2025-05-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := opts.session(nil)
			session.Mount(cmd.Context())
			session.SetDraft(flags.apply(cmd, session.State().Draft))
			return opts.finish(session, session.Submit(cmd.Context()))
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update a student",
		Example: `  studentctl update 3 --role "Lead Designer" --salary 52000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session := opts.session(nil)
			if notice := session.Mount(cmd.Context()); notice.Kind == view.NoticeError {
				return errors.New(notice.Message)
			}
			if !session.EditRecord(id) {
				return fmt.Errorf("student %d not found", id)
			}
			session.SetDraft(flags.apply(cmd, session.State().Draft))
			return opts.finish(session, session.Submit(cmd.Context()))
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session := opts.session(func(question string) bool {
				return yes || opts.prompt(question)
			})
			session.Mount(cmd.Context())

			notice := session.Delete(cmd.Context(), id)
			if notice.IsZero() {
				fmt.Fprintln(opts.streams.Err, "Aborted (use --yes to skip confirmation)")
				return nil
			}
			return opts.finish(session, notice)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func parseID(text string) (int64, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid student id %q", text)
	}
	return id, nil
}

// finish prints the notice and the refreshed list; an error notice fails the command
func (o *rootOptions) finish(session *view.Session, notice view.Notice) error {
	if o.output == "json" {
		if err := printJSON(o.streams.Out, struct {
			Notice  view.Notice      `json:"notice"`
			Records []models.Student `json:"records"`
		}{notice, session.State().Records}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(o.streams.Out, notice.Message)
		if notice.Kind == view.NoticeSuccess {
			if err := o.printRecords(session.State().Records); err != nil {
				return err
			}
		}
	}

	if notice.Kind == view.NoticeError {
		return errors.New(notice.Message)
	}
	return nil
}

func (o *rootOptions) printRecords(records []models.Student) error {
	if o.output == "json" {
		return printJSON(o.streams.Out, records)
	}
	return printTable(o.streams.Out, records)
}

func printTable(w io.Writer, records []models.Student) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tGROUP\tROLE\tSALARY\tDEFENSE DATE")
	for _, s := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			s.ID, s.FirstName, s.LastName, s.GroupName, s.Role, s.ExpectedSalary,
			s.ExpectedDateOfDefense.UTC().Format(view.DateLayout))
	}
	return tw.Flush()
}
