package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"niseyomi/internal/log"
)

// Options are bound from the command line first and the environment second.
type Options struct {
	EnvFile        string        `long:"env" default:".env" description:"dotenv file to load before reading the environment"`
	Token          string        `long:"token" env:"DISCORD_BOT_TOKEN" description:"Discord bot token"`
	Debug          bool          `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	Timezone       string        `long:"timezone" env:"REMINDER_TIMEZONE" default:"Asia/Tokyo" description:"Zone the /event timestamp is entered in"`
	ReminderOffset time.Duration `long:"reminder-offset" env:"REMINDER_OFFSET" default:"0s" description:"Shift applied to every reminder after zone conversion"`
	MirrorDomain   string        `long:"mirror-domain" env:"MIRROR_DOMAIN" default:"vxtwitter.com" description:"Domain x.com and twitter.com links are rewritten to"`
}

type Config struct {
	Token          string
	Debug          bool
	Location       *time.Location
	ReminderOffset time.Duration
	MirrorDomain   string
}

var ErrMissingToken = errors.New("DISCORD_BOT_TOKEN is not set")

// Load reads the dotenv file named by --env (if any), then parses args.
// A flags.ErrHelp error is returned unchanged so the caller can print it.
func Load(args []string) (*Config, error) {
	envFile := ".env"
	for i, a := range args {
		if a == "--env" && i+1 < len(args) {
			envFile = args[i+1]
		}
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Warn("could not load dotenv file, continuing with system env vars", "file", envFile, log.Err(err))
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts.resolve()
}

func (o Options) resolve() (*Config, error) {
	if o.Token == "" {
		return nil, ErrMissingToken
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", o.Timezone, err)
	}
	if o.MirrorDomain == "" {
		return nil, errors.New("mirror domain must not be empty")
	}
	return &Config{
		Token:          o.Token,
		Debug:          o.Debug,
		Location:       loc,
		ReminderOffset: o.ReminderOffset,
		MirrorDomain:   o.MirrorDomain,
	}, nil
}
