package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/jessevdk/go-flags"

	"niseyomi/internal/bot"
	"niseyomi/internal/commands"
	"niseyomi/internal/config"
	"niseyomi/internal/log"
	"niseyomi/internal/reminder"
	"niseyomi/internal/rewrite"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return
		}
		log.Error("fatal", log.Err(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if cfg.Debug {
		log.SetLevel(slog.LevelDebug)
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	scheduler, err := reminder.NewGocronScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	scheduler.Start()

	dispatcher := bot.NewDispatcher()
	reminders := reminder.NewService(dg, scheduler, dispatcher.Submit)
	handlers := commands.New(dg, reminder.NewParser(cfg.Location, cfg.ReminderOffset), reminders)
	b := bot.New(dg, dispatcher, handlers, rewrite.New(cfg.MirrorDomain))
	b.Attach(dg)

	if err := dg.Open(); err != nil {
		_ = scheduler.Shutdown()
		dispatcher.Stop()
		return fmt.Errorf("cannot open the session: %w", err)
	}

	log.Info("bot is running, press CTRL-C to exit",
		"timezone", cfg.Location.String(),
		"reminder_offset", cfg.ReminderOffset,
		"mirror", cfg.MirrorDomain)
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Info("shutting down", "pending_reminders", scheduler.Pending())
	b.Close()
	if err := scheduler.Shutdown(); err != nil {
		log.Warn("scheduler shutdown failed", log.Err(err))
	}
	if err := dg.Close(); err != nil {
		log.Warn("session close failed", log.Err(err))
	}
	dispatcher.Stop()
	return nil
}
