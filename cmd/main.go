package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focuscycle/internal/bootstrap"
	"focuscycle/internal/core/model"
	"focuscycle/internal/platform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, platform.ErrAlreadyRunning) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var options bootstrap.Options

	root := &cobra.Command{
		Use:           "focuscycle",
		Short:         "Focus and break countdown timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTray(cmd, &options)
		},
	}
	root.PersistentFlags().StringVar(&options.ConfigPath, "config", "", "settings file (default: user config dir)")
	root.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&options.Silent, "silent", false, "never play the chime")

	root.AddCommand(newTrayCmd(&options))
	root.AddCommand(newTUICmd(&options))
	root.AddCommand(newConfigCmd(&options))
	root.AddCommand(newAutostartCmd(&options))
	return root
}

func newTrayCmd(options *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Run the desktop window and tray menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTray(cmd, options)
		},
	}
}

func newTUICmd(options *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv(cmd, *options)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(env)
		},
	}
}

func newConfigCmd(options *bootstrap.Options) *cobra.Command {
	config := &cobra.Command{Use: "config", Short: "Show or change saved settings"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv(cmd, *options)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), bootstrap.Describe(env.Path, env.Settings()))
			return nil
		},
	}

	var focus, rest int
	set := &cobra.Command{
		Use:   "set",
		Short: "Change the saved focus and break durations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("focus") && !cmd.Flags().Changed("break") {
				return errors.New("nothing to set: pass --focus and/or --break")
			}
			env, err := loadEnv(cmd, *options)
			if err != nil {
				return err
			}

			durations := env.Settings().Durations
			if cmd.Flags().Changed("focus") {
				durations.FocusMinutes = focus
			}
			if cmd.Flags().Changed("break") {
				durations.BreakMinutes = rest
			}
			if err := env.SetDurations(durations); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus=%dmin break=%dmin saved to %s\n",
				durations.FocusMinutes, durations.BreakMinutes, env.Path)
			return nil
		},
	}
	set.Flags().IntVar(&focus, "focus", model.DefaultFocusMinutes,
		fmt.Sprintf("focus minutes (%d-%d, step %d)", model.MinFocusMinutes, model.MaxFocusMinutes, model.FocusStepMinutes))
	set.Flags().IntVar(&rest, "break", model.DefaultBreakMinutes,
		fmt.Sprintf("break minutes (%d-%d)", model.MinBreakMinutes, model.MaxBreakMinutes))

	config.AddCommand(show, set)
	return config
}

func newAutostartCmd(options *bootstrap.Options) *cobra.Command {
	autostart := &cobra.Command{Use: "autostart", Short: "Manage launching the tray at login"}

	setter := func(use, short string, enabled bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				env, err := loadEnv(cmd, *options)
				if err != nil {
					return err
				}
				if err := env.SetLaunchAtLogin(enabled); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "launch at login: %t\n", enabled)
				return nil
			},
		}
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Report whether the login item is registered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv(cmd, *options)
			if err != nil {
				return err
			}
			item, err := env.Autostart()
			if err != nil {
				return err
			}
			enabled, err := item.Enabled()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "launch at login: %t\n", enabled)
			return nil
		},
	}

	autostart.AddCommand(
		setter("enable", "Launch the tray at login", true),
		setter("disable", "Stop launching the tray at login", false),
		status,
	)
	return autostart
}

func runTray(cmd *cobra.Command, options *bootstrap.Options) error {
	env, err := loadEnv(cmd, *options)
	if err != nil {
		return err
	}
	return bootstrap.RunTray(env)
}

func loadEnv(cmd *cobra.Command, options bootstrap.Options) (*bootstrap.Env, error) {
	logger := bootstrap.NewLogger(cmd.ErrOrStderr(), options.Verbose)
	return bootstrap.Load(options, logger)
}
