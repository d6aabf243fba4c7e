package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ptrack/internal/bootstrap"
	reportdto "ptrack/internal/modules/report/dto"
	"ptrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "ptrack",
		Short:         "Personal practice progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.ptrack)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newProgramCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newDayCmd(&dataDir))
	root.AddCommand(newCalendarCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newPluginCmd(&dataDir))
	return root
}

func loadConfig(dataDir string) (config.Config, error) {
	return config.New(dataDir)
}

func loadApp(dataDir string) (*bootstrap.App, config.Config, error) {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	return app, cfg, err
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run ptrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func newProgramCmd(dataDir *string) *cobra.Command {
	program := &cobra.Command{Use: "program", Short: "Manage practice programs"}

	var name string
	var total int
	add := &cobra.Command{
		Use:   "add --name <name> --total <n>",
		Short: "Create a program with a fixed question count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.CreateProgram(context.Background(), name, total)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "program created: %s (%s) total=%d color=%s\n", out.Name, out.ID, out.TotalQuestions, out.Color)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "program name")
	add.Flags().IntVar(&total, "total", 0, "total questions per session")
	program.AddCommand(add)

	program.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List programs with today's progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			cards, err := app.TrackerCLI.ListPrograms(context.Background())
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no programs")
				return nil
			}
			for _, c := range cards {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d\t%d%%\t%s\n", c.ID, c.Name, c.Correct, c.TotalQuestions, c.Percent, c.Label)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a program and its session history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			detail, err := app.TrackerCLI.GetProgram(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\ntotal: %d\ncolor: %s\ncreated: %s\n",
				detail.ID, detail.Name, detail.TotalQuestions, detail.Color, detail.CreatedAt.Format("2006-01-02"))
			for _, s := range detail.Sessions {
				state := "open"
				if s.CompletedAt != nil {
					state = "done"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d\t%d%%\t%s\n", s.Date, s.Correct, s.Total, s.Percent, state)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "program id")
	program.AddCommand(show)

	program.AddCommand(&cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete programs by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.DeletePrograms(context.Background(), args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d program(s)\n", out.Removed)
			return nil
		},
	})

	return program
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Practice session lifecycle"}

	var programID string
	start := &cobra.Command{
		Use:   "start --program-id <id>",
		Short: "Start or resume today's session for a program",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(programID) == "" {
				return fmt.Errorf("--program-id is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background(), programID)
			if err != nil {
				return err
			}
			verb := "started"
			if out.Resumed {
				verb = "resumed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s: %s program=%s %d/%d answered at=%s\n",
				verb, out.SessionID, out.ProgramName, out.Answered, out.Total, out.StartedAt.Format(time.RFC3339))
			return nil
		},
	}
	start.Flags().StringVar(&programID, "program-id", "", "program id")
	session.AddCommand(start)

	session.AddCommand(&cobra.Command{
		Use:   "answer <correct|wrong>",
		Short: "Record an answer on the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "correct" && args[0] != "wrong" {
				return fmt.Errorf("argument must be correct or wrong")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Answer(context.Background(), args[0] == "correct")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d answered, %d correct (%d%%)\n", out.Answered, out.Total, out.Correct, out.Percent)
			if out.Completed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session complete")
			}
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Persist the active session and close the drawer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Save(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved: %d/%d answered, %d correct (%d%%)\n", out.Answered, out.Total, out.Correct, out.Percent)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Abandon the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Cancel(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session cancelled: %s\n", out.SessionID)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "complete",
		Short: "Mark the active session complete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Complete(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session complete: %d/%d (%d%%)\n", out.Correct, out.Total, out.Percent)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "program=%s session=%s started=%s %d/%d answered %d correct (%d%%)\n",
				out.ProgramName, out.SessionID, out.StartedAt.Format(time.RFC3339), out.Answered, out.Total, out.Correct, out.Percent)
			return nil
		},
	})

	return session
}

func newDayCmd(dataDir *string) *cobra.Command {
	var date string
	day := &cobra.Command{
		Use:   "day [--date yyyy-mm-dd]",
		Short: "List sessions logged on a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sessions, err := app.CalendarCLI.Day(context.Background(), date)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no sessions on %s\n", date)
				return nil
			}
			for _, s := range sessions {
				state := "open"
				if s.Completed {
					state = "done"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d\t%d%%\t%s\n", s.ProgramName, s.Correct, s.Total, s.Percent, state)
			}
			return nil
		},
	}
	day.Flags().StringVar(&date, "date", "", "day to inspect (default today)")
	return day
}

func newCalendarCmd(dataDir *string) *cobra.Command {
	var year, month int
	var week bool
	calendar := &cobra.Command{
		Use:   "calendar",
		Short: "Show activity by month or week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if week {
				days, err := app.CalendarCLI.Week(context.Background(), "")
				if err != nil {
					return err
				}
				for _, d := range days {
					marker := " "
					if d.HasData {
						marker = "*"
					}
					today := ""
					if d.Today {
						today = "  <- today"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s%s\n", d.Label, d.Date, marker, today)
				}
				return nil
			}
			out, err := app.CalendarCLI.Month(context.Background(), year, month, "")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Label)
			for _, d := range out.Days {
				marker := ""
				if d.HasData {
					marker = " *"
				}
				if d.Today {
					marker += "  <- today"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", d.Date, marker)
			}
			return nil
		},
	}
	calendar.Flags().IntVar(&year, "year", 0, "year (default current)")
	calendar.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	calendar.Flags().BoolVar(&week, "week", false, "show the current week instead of a month")
	return calendar
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime practice statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.StatsCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions=%d completed=%d answers=%d/%d accuracy=%d%% streak=%d\n",
				out.TotalSessions, out.TotalCompleted, out.TotalCorrect, out.TotalAnswered, out.Accuracy, out.CurrentStreak)
			for _, p := range out.Programs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsessions=%d done=%d correct=%d/%d accuracy=%d%%\n",
					p.ProgramName, p.Sessions, p.Completed, p.Correct, p.Answered, p.Accuracy)
			}
			return nil
		},
	}
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from the tracker document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.TrackerCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newPluginCmd(dataDir *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Plugin operations"}
	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", p.Name, p.Version, p.Enabled, p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var commandPluginName string
	commandsCmd := &cobra.Command{
		Use:   "commands --plugin <name>",
		Short: "List commands exposed by a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(commandPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			commands, err := app.PluginCLI.ListCommands(context.Background(), commandPluginName)
			if err != nil {
				return err
			}
			if len(commands) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no commands")
				return nil
			}
			for _, item := range commands {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s kind=%s timeout_ms=%d title=%q\n", item.ID, item.Kind, item.TimeoutMS, item.Title)
			}
			return nil
		},
	}
	commandsCmd.Flags().StringVar(&commandPluginName, "plugin", "", "plugin name")
	plugin.AddCommand(commandsCmd)

	var execPluginName, execCommandID, execInputJSON, execProgramID, execSessionID string
	execCmd := &cobra.Command{
		Use:   "exec --plugin <name> --command <id>",
		Short: "Execute a plugin command capability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(execPluginName) == "" || strings.TrimSpace(execCommandID) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(execInputJSON); err != nil {
				return err
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Execute(context.Background(), reportdto.ExecuteInput{
				PluginName: execPluginName,
				CommandID:  execCommandID,
				InputJSON:  execInputJSON,
				ProgramID:  execProgramID,
				SessionID:  execSessionID,
				DataDir:    cfg.DataDir,
				Cwd:        cfg.DataDir,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	execCmd.Flags().StringVar(&execPluginName, "plugin", "", "plugin name")
	execCmd.Flags().StringVar(&execCommandID, "command", "", "command id")
	execCmd.Flags().StringVar(&execInputJSON, "input-json", "", "JSON input payload")
	execCmd.Flags().StringVar(&execProgramID, "program-id", "", "optional program id")
	execCmd.Flags().StringVar(&execSessionID, "session-id", "", "optional session id")
	plugin.AddCommand(execCmd)

	var reportPluginName, reportCommandID, reportInputJSON, reportProgramID string
	reportCmd := &cobra.Command{
		Use:   "report --plugin <name> --command <id>",
		Short: "Execute a report-capability plugin command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reportPluginName) == "" || strings.TrimSpace(reportCommandID) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(reportInputJSON); err != nil {
				return err
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Report(context.Background(), reportdto.ExecuteInput{
				PluginName: reportPluginName,
				CommandID:  reportCommandID,
				InputJSON:  reportInputJSON,
				ProgramID:  reportProgramID,
				DataDir:    cfg.DataDir,
				Cwd:        cfg.DataDir,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&reportPluginName, "plugin", "", "plugin name")
	reportCmd.Flags().StringVar(&reportCommandID, "command", "", "command id")
	reportCmd.Flags().StringVar(&reportInputJSON, "input-json", "", "JSON input payload")
	reportCmd.Flags().StringVar(&reportProgramID, "program-id", "", "optional program id")
	plugin.AddCommand(reportCmd)

	var ttyPluginName, ttyCommandID, ttyInputJSON, ttyProgramID, ttySessionID string
	ttyCmd := &cobra.Command{
		Use:   "tty --plugin <name> --command <id>",
		Short: "Prepare and run fullscreen tty plugin command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(ttyPluginName) == "" || strings.TrimSpace(ttyCommandID) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(ttyInputJSON); err != nil {
				return err
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			plan, err := app.PluginCLI.PrepareTTY(context.Background(), reportdto.TTYPrepareInput{
				PluginName: ttyPluginName,
				CommandID:  ttyCommandID,
				InputJSON:  ttyInputJSON,
				ProgramID:  ttyProgramID,
				SessionID:  ttySessionID,
				DataDir:    cfg.DataDir,
				Cwd:        cfg.DataDir,
			})
			if err != nil {
				return err
			}
			return runTTYPlan(plan)
		},
	}
	ttyCmd.Flags().StringVar(&ttyPluginName, "plugin", "", "plugin name")
	ttyCmd.Flags().StringVar(&ttyCommandID, "command", "", "command id")
	ttyCmd.Flags().StringVar(&ttyInputJSON, "input-json", "", "JSON input payload")
	ttyCmd.Flags().StringVar(&ttyProgramID, "program-id", "", "optional program id")
	ttyCmd.Flags().StringVar(&ttySessionID, "session-id", "", "optional session id")
	plugin.AddCommand(ttyCmd)

	return plugin
}

func printExecuteOutput(cmd *cobra.Command, out reportdto.ExecuteOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plugin=%s command=%s exit=%d\n", out.PluginName, out.CommandID, out.ExitCode)
	if strings.TrimSpace(out.Stdout) != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Stdout)
	}
	if strings.TrimSpace(out.Stderr) != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
	}
	if strings.TrimSpace(out.OutputJSON) != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
	}
}

func validateJSONInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if !json.Valid([]byte(input)) {
		return fmt.Errorf("--input-json must be valid JSON")
	}
	return nil
}

func runTTYPlan(plan reportdto.TTYPrepareOutput) error {
	if len(plan.Argv) == 0 {
		return fmt.Errorf("plugin tty plan has empty argv")
	}
	cmd := exec.Command(plan.Argv[0], plan.Argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if plan.Cwd != "" {
		cmd.Dir = plan.Cwd
	}
	env := os.Environ()
	for key, value := range plan.Env {
		env = append(env, key+"="+value)
	}
	cmd.Env = env
	return cmd.Run()
}
