// Package bot wires gateway events to the bot's features.
package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/chat"
	"niseyomi/internal/commands"
	"niseyomi/internal/companion"
	"niseyomi/internal/log"
	"niseyomi/internal/reminder"
	"niseyomi/internal/rewrite"
)

// Bot owns the companion registry and handles every event on the dispatcher.
type Bot struct {
	client     chat.Client
	dispatcher *Dispatcher
	router     *Router
	handlers   *commands.Handlers
	registry   *companion.Registry
	rewriter   *rewrite.Rewriter
	selfID     string

	statusOnce sync.Once
	stopStatus chan struct{}
}

func New(client chat.Client, dispatcher *Dispatcher, handlers *commands.Handlers, rewriter *rewrite.Rewriter) *Bot {
	router := NewRouter()
	router.Command(commands.NameEvent, handlers.Event)
	router.Command(commands.NameWebsite, handlers.Website)
	router.Command(commands.NameDeleteMessages, handlers.DeleteMessages)
	router.Command(commands.NameDeleteMessagesAll, handlers.DeleteMessagesAll)
	router.Command(commands.NameAbout, handlers.About)
	router.Modal(reminder.ModalPrefix, handlers.SubmitReminder)

	return &Bot{
		client:     client,
		dispatcher: dispatcher,
		router:     router,
		handlers:   handlers,
		registry:   companion.NewRegistry(),
		rewriter:   rewriter,
		stopStatus: make(chan struct{}),
	}
}

// Attach registers the gateway handlers on s. Each one only enqueues work.
func (b *Bot) Attach(s *discordgo.Session) {
	s.AddHandler(b.onReady)
	s.AddHandler(b.onMessageCreate)
	s.AddHandler(b.onMessageDelete)
	s.AddHandler(b.onInteractionCreate)
}

// Close stops the status rotation.
func (b *Bot) Close() {
	close(b.stopStatus)
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.dispatcher.Submit(func() {
		b.HandleReady(s, r)
	})
	b.statusOnce.Do(func() {
		go rotateStatus(s, statusInterval, b.stopStatus)
	})
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.dispatcher.Submit(func() {
		b.HandleMessage(m.Message)
	})
}

func (b *Bot) onMessageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	b.dispatcher.Submit(func() {
		b.HandleMessageDelete(m.ID)
	})
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatcher.Submit(func() {
		b.router.Route(i)
	})
}

type commandSyncer interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// HandleReady records the bot user and replaces the command set of every
// guild with the current definitions.
func (b *Bot) HandleReady(s commandSyncer, r *discordgo.Ready) {
	b.selfID = r.User.ID
	b.handlers.SetSelf(r.User)
	log.Info("logged in", "user", r.User.Username, "guilds", len(r.Guilds))

	defs := commands.Definitions()
	synced := 0
	for _, g := range r.Guilds {
		if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, g.ID, defs); err != nil {
			log.Warn("failed to sync commands", "guild", g.ID, log.Err(err))
			continue
		}
		synced++
	}
	log.Info("synchronized commands", "guilds", synced)
}

// HandleMessageDelete removes the companions of a deleted message.
func (b *Bot) HandleMessageDelete(messageID string) {
	if n := b.registry.CascadeDelete(b.client, messageID); n > 0 {
		log.Debug("cascade deleted companions", "message", messageID, "count", n)
	}
}
