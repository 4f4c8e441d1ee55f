package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/studymate/studymate/internal/app"
	"github.com/studymate/studymate/internal/config"
	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	serve := newServeCmd(&configPath)
	root := &cobra.Command{
		Use:           "studymate",
		Short:         "Weekly study-session scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path of the YAML configuration file")

	root.AddCommand(serve)
	root.AddCommand(newPlanCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}
}

func newPlanCmd(configPath *string) *cobra.Command {
	var planPath, clockStyle string
	var seed uint64

	cmd := &cobra.Command{
		Use:   "plan --file <plan.yaml>",
		Short: "Print a weekly timetable for the subjects of a plan file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("clock") {
				clockStyle = cfg.Clock.Style
			}
			style, err := timetable.ParseClockStyle(clockStyle)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Schedule.Seed
			}

			planFile, err := config.LoadPlanFile(planPath, cfg.Defaults)
			if err != nil {
				return err
			}
			subjects, prefs, err := fromPlanFile(planFile)
			if err != nil {
				return err
			}

			generator := timetable.NewGenerator()
			if seed != 0 {
				generator = timetable.NewSeededGenerator(seed)
			}
			week, _ := generator.Generate(subjects, prefs)
			_, err = fmt.Fprint(cmd.OutOrStdout(), timetable.NewTextRenderer(style).Render(week))
			return err
		},
	}
	cmd.Flags().StringVar(&planPath, "file", "plan.yaml", "Plan file with preferences and subjects")
	cmd.Flags().StringVar(&clockStyle, "clock", "literal", "Clock style: literal or conventional")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed, 0 picks a random one")
	return cmd
}

func fromPlanFile(planFile config.PlanFile) ([]subject.Subject, timetable.Preferences, error) {
	prefs := timetable.Preferences{
		DailyHours:     planFile.Preferences.DailyHours,
		SessionMinutes: planFile.Preferences.SessionMinutes,
		BreakMinutes:   planFile.Preferences.BreakMinutes,
	}
	if err := prefs.Validate(); err != nil {
		return nil, timetable.Preferences{}, err
	}
	subjects := make([]subject.Subject, 0, len(planFile.Subjects))
	for _, ps := range planFile.Subjects {
		s := subject.Subject{Name: ps.Name, WeeklyHours: ps.Hours, Difficulty: subject.Difficulty(ps.Difficulty)}
		if s.Difficulty == "" {
			s.Difficulty = subject.Medium
		}
		if err := s.Validate(); err != nil {
			return nil, timetable.Preferences{}, fmt.Errorf("subject %q: %w", ps.Name, err)
		}
		subjects = append(subjects, s)
	}
	return subjects, prefs, nil
}
