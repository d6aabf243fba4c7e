package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	calendarinadapter "ptrack/internal/modules/calendar/adapter/in"
	calendaroutadapter "ptrack/internal/modules/calendar/adapter/out"
	calendarservice "ptrack/internal/modules/calendar/service"
	calendarusecase "ptrack/internal/modules/calendar/usecase"
	reportinadapter "ptrack/internal/modules/report/adapter/in"
	reportoutadapter "ptrack/internal/modules/report/adapter/out"
	reportservice "ptrack/internal/modules/report/service"
	reportusecase "ptrack/internal/modules/report/usecase"
	sessioninadapter "ptrack/internal/modules/session/adapter/in"
	sessionoutadapter "ptrack/internal/modules/session/adapter/out"
	sessionservice "ptrack/internal/modules/session/service"
	sessionusecase "ptrack/internal/modules/session/usecase"
	statsinadapter "ptrack/internal/modules/stats/adapter/in"
	statsoutadapter "ptrack/internal/modules/stats/adapter/out"
	statsservice "ptrack/internal/modules/stats/service"
	statsusecase "ptrack/internal/modules/stats/usecase"
	trackerinadapter "ptrack/internal/modules/tracker/adapter/in"
	trackeroutadapter "ptrack/internal/modules/tracker/adapter/out"
	trackerservice "ptrack/internal/modules/tracker/service"
	trackerusecase "ptrack/internal/modules/tracker/usecase"
	"ptrack/internal/platform/clock"
	"ptrack/internal/platform/config"
	"ptrack/internal/platform/id"
	"ptrack/internal/platform/palette"
	uiapp "ptrack/internal/ui/app"
)

type App struct {
	TrackerCLI  trackerinadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	CalendarCLI calendarinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler
	PluginCLI   reportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	picker := palette.RandomPicker{Colors: cfg.Settings.Colors}

	documentStore := trackeroutadapter.NewFileDocumentStore(cfg.DocumentPath)
	activityProjector, err := trackeroutadapter.NewSQLiteActivityProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new activity projector: %w", err)
	}
	trackerSvc := trackerservice.NewProgramService(clk, ids, picker, documentStore, activityProjector)
	trackerUC := trackerusecase.NewInteractor(trackerSvc)

	activeStore := sessionoutadapter.NewFileActiveSessionStore(cfg.DataDir)
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		sessionoutadapter.NewTrackerDocumentAdapter(trackerUC),
		activeStore,
	)

	activityIndex, err := calendaroutadapter.NewSQLiteActivityIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new activity index: %w", err)
	}
	calendarUC := calendarusecase.NewInteractor(calendarservice.NewCalendarService(
		clk,
		calendaroutadapter.NewTrackerDocumentAdapter(trackerUC),
		activityIndex,
	))

	statsIndex, err := statsoutadapter.NewSQLiteStatsIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new stats index: %w", err)
	}
	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(clk, statsIndex))

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		reportoutadapter.NewFileManifestStore(cfg.DataDir),
		reportoutadapter.NewGRPCHost(),
	))

	return &App{
		TrackerCLI:  trackerinadapter.NewCLIHandler(trackerUC),
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		CalendarCLI: calendarinadapter.NewCLIHandler(calendarUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		PluginCLI:   reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

func RunTUI(cfg config.Config, app *App) error {
	model := uiapp.NewModel(
		cfg.DataDir,
		cfg.Settings.DisplayName,
		app.TrackerCLI,
		app.SessionCLI,
		app.CalendarCLI,
		app.StatsCLI,
		app.PluginCLI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
